package repository

import (
	"context"
	"errors"

	"github.com/ramonfbmiranda/arquivosmaverick/internal/models"
)

var (
	ErrNotFound = errors.New("record not found")
)

// MaxResults caps every list read. There is no pagination.
const MaxResults = 1000

// Collection names, one per entity.
const (
	MembersCollection  = "members"
	CommentsCollection = "comments"
	QuotesCollection   = "quotes"
	PhotosCollection   = "photos"
)

// MemberRepository persists members. UpdateByID and DeleteByID report how
// many records matched so callers can tell "not found" apart from success.
type MemberRepository interface {
	Insert(ctx context.Context, m *models.Member) error
	FindAll(ctx context.Context) ([]models.Member, error)
	FindByID(ctx context.Context, id string) (*models.Member, error)
	UpdateByID(ctx context.Context, id string, fields map[string]any) (int64, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

type CommentRepository interface {
	Insert(ctx context.Context, c *models.Comment) error
	FindByMember(ctx context.Context, memberID string) ([]models.Comment, error)
}

type QuoteRepository interface {
	Insert(ctx context.Context, q *models.Quote) error
	FindAll(ctx context.Context) ([]models.Quote, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

type PhotoRepository interface {
	Insert(ctx context.Context, p *models.Photo) error
	FindAll(ctx context.Context) ([]models.Photo, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

// Store bundles the per-entity repositories handed to the service layer.
type Store struct {
	Members  MemberRepository
	Comments CommentRepository
	Quotes   QuoteRepository
	Photos   PhotoRepository
}
