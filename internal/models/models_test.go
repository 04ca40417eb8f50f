package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestNewIDIsCanonicalUUID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		require.Equal(t, uuid.Version(4), parsed.Version())
		require.Len(t, id, 36)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestNowIsUTCMicroseconds(t *testing.T) {
	before := time.Now().UTC().Add(-time.Second)
	n := Now()
	require.Equal(t, time.UTC, n.Location())
	require.Zero(t, n.Nanosecond()%1000)
	require.True(t, n.After(before))
}

func TestMemberCreateBuild(t *testing.T) {
	in := MemberCreate{
		Name:            strp("Test Member"),
		Nickname:        strp("Testinho"),
		Classification:  strp("O Testador"),
		Description:     strp(""),
		Characteristics: []string{"A", "B"},
		CurrentStatus:   strp("Ativo"),
		Role:            strp("QA"),
	}
	ts := Now()
	m := in.Build("id-1", ts)
	require.Equal(t, "id-1", m.ID)
	require.Equal(t, "Test Member", m.Name)
	require.Equal(t, "", m.Description)
	require.Equal(t, []string{"A", "B"}, m.Characteristics)
	require.Nil(t, m.PhotoURL)
	require.Equal(t, ts, m.CreatedAt)

	// the record must not alias the request slice
	in.Characteristics[0] = "Z"
	require.Equal(t, "A", m.Characteristics[0])
}

func TestMemberUpdateFields(t *testing.T) {
	require.Empty(t, MemberUpdate{}.Fields())

	u := MemberUpdate{Description: strp("changed"), Characteristics: []string{}}
	f := u.Fields()
	require.Equal(t, map[string]any{"description": "changed", "characteristics": []string{}}, f)
	require.NotContains(t, f, "id")
	require.NotContains(t, f, "created_at")
}

func TestMemberUpdateApply(t *testing.T) {
	created := Now()
	m := Member{ID: "x", Name: "a", Description: "old", Characteristics: []string{"c"}, CreatedAt: created}
	MemberUpdate{Description: strp("new"), PhotoURL: strp("http://p")}.Apply(&m)
	require.Equal(t, "x", m.ID)
	require.Equal(t, "a", m.Name)
	require.Equal(t, "new", m.Description)
	require.Equal(t, []string{"c"}, m.Characteristics)
	require.Equal(t, "http://p", *m.PhotoURL)
	require.Equal(t, created, m.CreatedAt)
}

func TestPhotoCreateDefaultsMemberIDs(t *testing.T) {
	p := PhotoCreate{URL: strp("http://img")}.Build("p1", Now())
	require.NotNil(t, p.MemberIDs)
	require.Empty(t, p.MemberIDs)
	require.Nil(t, p.Caption)
}

func TestQuoteAndCommentBuild(t *testing.T) {
	q := QuoteCreate{Text: strp("hello")}.Build("q1", Now())
	require.Nil(t, q.MemberID)
	require.Nil(t, q.Context)
	require.Equal(t, "hello", q.Text)

	c := CommentCreate{MemberID: strp("ghost"), AuthorName: strp("ana"), Text: strp("oi")}.Build("c1", Now())
	require.Equal(t, "ghost", c.MemberID)
	require.Equal(t, "ana", c.AuthorName)
}
