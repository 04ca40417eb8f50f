package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ramonfbmiranda/arquivosmaverick/internal/models"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestMemoryMemberRepoCRUD(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryMemberRepo()
	m := &models.Member{ID: "m1", Name: "Test", Description: "d", Characteristics: []string{"A"}, CreatedAt: models.Now()}
	require.NoError(t, r.Insert(ctx, m))

	got, err := r.FindByID(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, *m, *got)

	list, err := r.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	n, err := r.UpdateByID(ctx, "m1", map[string]any{"description": "new", "photo_url": "http://x"})
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
	got2, err := r.FindByID(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, "new", got2.Description)
	require.Equal(t, "http://x", *got2.PhotoURL)
	require.Equal(t, m.CreatedAt, got2.CreatedAt)

	n, err = r.UpdateByID(ctx, "missing", map[string]any{"name": "x"})
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = r.DeleteByID(ctx, "m1")
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
	_, err = r.FindByID(ctx, "m1")
	require.ErrorIs(t, err, ErrNotFound)

	n, err = r.DeleteByID(ctx, "m1")
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestMemoryMemberRepoKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryMemberRepo()
	now := models.Now()
	for i, id := range []string{"c", "a", "b"} {
		require.NoError(t, r.Insert(ctx, &models.Member{ID: id, CreatedAt: now.Add(-time.Duration(i) * time.Hour)}))
	}
	list, err := r.FindAll(ctx)
	require.NoError(t, err)
	require.Equal(t, "c", list[0].ID)
	require.Equal(t, "a", list[1].ID)
	require.Equal(t, "b", list[2].ID)
}

func TestMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryMemberRepo()
	require.NoError(t, r.Insert(ctx, &models.Member{ID: "m", Characteristics: []string{"A"}}))
	got, err := r.FindByID(ctx, "m")
	require.NoError(t, err)
	got.Characteristics[0] = "mutated"
	again, err := r.FindByID(ctx, "m")
	require.NoError(t, err)
	require.Equal(t, "A", again.Characteristics[0])
}

func TestMemoryListsNewestFirst(t *testing.T) {
	ctx := context.Background()
	base := models.Now()
	store := NewMemoryStore()

	for i := 0; i < 3; i++ {
		ts := base.Add(time.Duration(i) * time.Second)
		id := string(rune('1' + i))
		require.NoError(t, store.Quotes.Insert(ctx, &models.Quote{ID: "q" + id, Text: "t", CreatedAt: ts}))
		require.NoError(t, store.Photos.Insert(ctx, &models.Photo{ID: "p" + id, URL: "u", MemberIDs: []string{}, Timestamp: ts}))
		require.NoError(t, store.Comments.Insert(ctx, &models.Comment{ID: "c" + id, MemberID: "m", Timestamp: ts}))
	}
	require.NoError(t, store.Comments.Insert(ctx, &models.Comment{ID: "other", MemberID: "someone-else", Timestamp: base}))

	quotes, err := store.Quotes.FindAll(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"q3", "q2", "q1"}, []string{quotes[0].ID, quotes[1].ID, quotes[2].ID})

	photos, err := store.Photos.FindAll(ctx)
	require.NoError(t, err)
	require.Equal(t, "p3", photos[0].ID)
	require.Equal(t, "p1", photos[2].ID)

	comments, err := store.Comments.FindByMember(ctx, "m")
	require.NoError(t, err)
	require.Len(t, comments, 3)
	require.Equal(t, "c3", comments[0].ID)

	none, err := store.Comments.FindByMember(ctx, "nobody")
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestMemoryDeleteQuoteAndPhoto(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Quotes.Insert(ctx, &models.Quote{ID: "q", Text: "t", Context: ptr("c")}))
	require.NoError(t, store.Photos.Insert(ctx, &models.Photo{ID: "p", URL: "u"}))

	n, err := store.Quotes.DeleteByID(ctx, "q")
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
	n, err = store.Quotes.DeleteByID(ctx, "q")
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = store.Photos.DeleteByID(ctx, "p")
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
	n, err = store.Photos.DeleteByID(ctx, "nope")
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestMemoryListCap(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryQuoteRepo()
	base := models.Now()
	for i := 0; i < MaxResults+5; i++ {
		require.NoError(t, r.Insert(ctx, &models.Quote{ID: models.NewID(), CreatedAt: base.Add(time.Duration(i) * time.Millisecond)}))
	}
	list, err := r.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, MaxResults)
}
