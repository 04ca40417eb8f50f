package models

import "time"

// Quote is a standalone quote, optionally attributed to a member.
type Quote struct {
	ID        string    `json:"id"`
	MemberID  *string   `json:"member_id"`
	Text      string    `json:"text"`
	Context   *string   `json:"context"`
	CreatedAt time.Time `json:"created_at"`
}

type QuoteCreate struct {
	MemberID *string `json:"member_id"`
	Text     *string `json:"text" binding:"required"`
	Context  *string `json:"context"`
}

func (in QuoteCreate) Build(id string, createdAt time.Time) Quote {
	return Quote{
		ID:        id,
		MemberID:  in.MemberID,
		Text:      deref(in.Text),
		Context:   in.Context,
		CreatedAt: createdAt,
	}
}
