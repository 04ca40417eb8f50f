package models

import "time"

// Comment is a visitor comment left on a member's profile. MemberID is not
// checked against the members collection.
type Comment struct {
	ID         string    `json:"id"`
	MemberID   string    `json:"member_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}

type CommentCreate struct {
	MemberID   *string `json:"member_id" binding:"required"`
	AuthorName *string `json:"author_name" binding:"required"`
	Text       *string `json:"text" binding:"required"`
}

func (in CommentCreate) Build(id string, ts time.Time) Comment {
	return Comment{
		ID:         id,
		MemberID:   deref(in.MemberID),
		AuthorName: deref(in.AuthorName),
		Text:       deref(in.Text),
		Timestamp:  ts,
	}
}
