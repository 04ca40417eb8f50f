package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ramonfbmiranda/arquivosmaverick/internal/models"
	"github.com/ramonfbmiranda/arquivosmaverick/internal/repository"
	"github.com/ramonfbmiranda/arquivosmaverick/pkg/metrics"
)

var (
	// ErrNotFound means the id did not resolve to a stored record.
	ErrNotFound = errors.New("not found")
	// ErrInvalidRequest means an update carried no fields to change.
	ErrInvalidRequest = errors.New("no fields to update")
)

// Service implements every entity operation on top of a repository.Store.
// It holds no mutable state of its own; concurrent use is safe as long as the
// store is.
type Service struct {
	store *repository.Store
	newID func() string
	now   func() time.Time
}

type Option func(*Service)

// WithIDGenerator replaces models.NewID.
func WithIDGenerator(f func() string) Option {
	return func(s *Service) { s.newID = f }
}

// WithClock replaces models.Now.
func WithClock(f func() time.Time) Option {
	return func(s *Service) { s.now = f }
}

func New(store *repository.Store, opts ...Option) *Service {
	s := &Service{store: store, newID: models.NewID, now: models.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

func observe(entity, op string, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		outcome = "not_found"
	case errors.Is(err, ErrInvalidRequest):
		outcome = "invalid"
	default:
		outcome = "error"
	}
	metrics.StoreOperations.WithLabelValues(entity, op, outcome).Inc()
}

func (s *Service) CreateMember(ctx context.Context, in models.MemberCreate) (m *models.Member, err error) {
	defer func() { observe("member", "create", err) }()
	rec := in.Build(s.newID(), s.now())
	if err := s.store.Members.Insert(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Service) ListMembers(ctx context.Context) (list []models.Member, err error) {
	defer func() { observe("member", "list", err) }()
	return s.store.Members.FindAll(ctx)
}

func (s *Service) GetMember(ctx context.Context, id string) (m *models.Member, err error) {
	defer func() { observe("member", "get", err) }()
	return s.findMember(ctx, id)
}

// UpdateMember applies only the supplied fields. An update with nothing in it
// is rejected before the store is touched.
func (s *Service) UpdateMember(ctx context.Context, id string, in models.MemberUpdate) (m *models.Member, err error) {
	defer func() { observe("member", "update", err) }()
	fields := in.Fields()
	if len(fields) == 0 {
		return nil, ErrInvalidRequest
	}
	matched, err := s.store.Members.UpdateByID(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, ErrNotFound
	}
	return s.findMember(ctx, id)
}

func (s *Service) DeleteMember(ctx context.Context, id string) (err error) {
	defer func() { observe("member", "delete", err) }()
	return deleted(s.store.Members.DeleteByID(ctx, id))
}

func (s *Service) CreateComment(ctx context.Context, in models.CommentCreate) (c *models.Comment, err error) {
	defer func() { observe("comment", "create", err) }()
	rec := in.Build(s.newID(), s.now())
	if err := s.store.Comments.Insert(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListComments returns the comments left for memberID, newest first. The
// member itself is not looked up.
func (s *Service) ListComments(ctx context.Context, memberID string) (list []models.Comment, err error) {
	defer func() { observe("comment", "list", err) }()
	return s.store.Comments.FindByMember(ctx, memberID)
}

func (s *Service) CreateQuote(ctx context.Context, in models.QuoteCreate) (q *models.Quote, err error) {
	defer func() { observe("quote", "create", err) }()
	rec := in.Build(s.newID(), s.now())
	if err := s.store.Quotes.Insert(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Service) ListQuotes(ctx context.Context) (list []models.Quote, err error) {
	defer func() { observe("quote", "list", err) }()
	return s.store.Quotes.FindAll(ctx)
}

func (s *Service) DeleteQuote(ctx context.Context, id string) (err error) {
	defer func() { observe("quote", "delete", err) }()
	return deleted(s.store.Quotes.DeleteByID(ctx, id))
}

func (s *Service) CreatePhoto(ctx context.Context, in models.PhotoCreate) (p *models.Photo, err error) {
	defer func() { observe("photo", "create", err) }()
	rec := in.Build(s.newID(), s.now())
	if err := s.store.Photos.Insert(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Service) ListPhotos(ctx context.Context) (list []models.Photo, err error) {
	defer func() { observe("photo", "list", err) }()
	return s.store.Photos.FindAll(ctx)
}

func (s *Service) DeletePhoto(ctx context.Context, id string) (err error) {
	defer func() { observe("photo", "delete", err) }()
	return deleted(s.store.Photos.DeleteByID(ctx, id))
}

func (s *Service) findMember(ctx context.Context, id string) (*models.Member, error) {
	m, err := s.store.Members.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load member %s: %w", id, err)
	}
	return m, nil
}

func deleted(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
