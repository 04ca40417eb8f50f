package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/ramonfbmiranda/arquivosmaverick/internal/models"
)

// NewMemoryStore returns a process-local Store. It is used by tests and when
// no MongoDB URI is configured; nothing survives a restart.
func NewMemoryStore() *Store {
	return &Store{
		Members:  NewMemoryMemberRepo(),
		Comments: NewMemoryCommentRepo(),
		Quotes:   NewMemoryQuoteRepo(),
		Photos:   NewMemoryPhotoRepo(),
	}
}

// MemoryMemberRepo keeps members in insertion order.
type MemoryMemberRepo struct {
	mu    sync.RWMutex
	order []string
	store map[string]models.Member
}

func NewMemoryMemberRepo() *MemoryMemberRepo {
	return &MemoryMemberRepo{store: make(map[string]models.Member)}
}

func (m *MemoryMemberRepo) Insert(_ context.Context, rec *models.Member) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[rec.ID]; !ok {
		m.order = append(m.order, rec.ID)
	}
	m.store[rec.ID] = copyMember(*rec)
	return nil
}

func (m *MemoryMemberRepo) FindAll(_ context.Context) ([]models.Member, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Member, 0, min(len(m.order), MaxResults))
	for _, id := range m.order {
		if len(out) == MaxResults {
			break
		}
		out = append(out, copyMember(m.store[id]))
	}
	return out, nil
}

func (m *MemoryMemberRepo) FindByID(_ context.Context, id string) (*models.Member, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := copyMember(rec)
	return &c, nil
}

func (m *MemoryMemberRepo) UpdateByID(_ context.Context, id string, fields map[string]any) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.store[id]
	if !ok {
		return 0, nil
	}
	for k, v := range fields {
		switch k {
		case "name":
			rec.Name, _ = v.(string)
		case "nickname":
			rec.Nickname, _ = v.(string)
		case "classification":
			rec.Classification, _ = v.(string)
		case "description":
			rec.Description, _ = v.(string)
		case "characteristics":
			chars, _ := v.([]string)
			rec.Characteristics = append([]string{}, chars...)
		case "current_status":
			rec.CurrentStatus, _ = v.(string)
		case "role":
			rec.Role, _ = v.(string)
		case "photo_url":
			if s, ok := v.(string); ok {
				rec.PhotoURL = &s
			}
		}
	}
	m.store[id] = rec
	return 1, nil
}

func (m *MemoryMemberRepo) DeleteByID(_ context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return 0, nil
	}
	delete(m.store, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

type MemoryCommentRepo struct {
	mu    sync.RWMutex
	items []models.Comment
}

func NewMemoryCommentRepo() *MemoryCommentRepo {
	return &MemoryCommentRepo{}
}

func (m *MemoryCommentRepo) Insert(_ context.Context, c *models.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, *c)
	return nil
}

func (m *MemoryCommentRepo) FindByMember(_ context.Context, memberID string) ([]models.Comment, error) {
	m.mu.RLock()
	out := []models.Comment{}
	for _, c := range m.items {
		if c.MemberID == memberID {
			out = append(out, c)
		}
	}
	m.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return capped(out), nil
}

type MemoryQuoteRepo struct {
	mu    sync.RWMutex
	items []models.Quote
}

func NewMemoryQuoteRepo() *MemoryQuoteRepo {
	return &MemoryQuoteRepo{}
}

func (m *MemoryQuoteRepo) Insert(_ context.Context, q *models.Quote) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, *q)
	return nil
}

func (m *MemoryQuoteRepo) FindAll(_ context.Context) ([]models.Quote, error) {
	m.mu.RLock()
	out := append([]models.Quote{}, m.items...)
	m.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return capped(out), nil
}

func (m *MemoryQuoteRepo) DeleteByID(_ context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, q := range m.items {
		if q.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type MemoryPhotoRepo struct {
	mu    sync.RWMutex
	items []models.Photo
}

func NewMemoryPhotoRepo() *MemoryPhotoRepo {
	return &MemoryPhotoRepo{}
}

func (m *MemoryPhotoRepo) Insert(_ context.Context, p *models.Photo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *p
	c.MemberIDs = append([]string{}, p.MemberIDs...)
	m.items = append(m.items, c)
	return nil
}

func (m *MemoryPhotoRepo) FindAll(_ context.Context) ([]models.Photo, error) {
	m.mu.RLock()
	out := make([]models.Photo, 0, len(m.items))
	for _, p := range m.items {
		p.MemberIDs = append([]string{}, p.MemberIDs...)
		out = append(out, p)
	}
	m.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return capped(out), nil
}

func (m *MemoryPhotoRepo) DeleteByID(_ context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.items {
		if p.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func capped[T any](s []T) []T {
	if len(s) > MaxResults {
		return s[:MaxResults]
	}
	return s
}

func copyMember(m models.Member) models.Member {
	m.Characteristics = append([]string{}, m.Characteristics...)
	if m.PhotoURL != nil {
		v := *m.PhotoURL
		m.PhotoURL = &v
	}
	return m
}
