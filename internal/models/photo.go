package models

import "time"

// Photo is a gallery picture tagging zero or more members.
type Photo struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Caption   *string   `json:"caption"`
	MemberIDs []string  `json:"member_ids"`
	Timestamp time.Time `json:"timestamp"`
}

type PhotoCreate struct {
	URL       *string  `json:"url" binding:"required"`
	Caption   *string  `json:"caption"`
	MemberIDs []string `json:"member_ids"`
}

// Build returns the full record. MemberIDs defaults to an empty list.
func (in PhotoCreate) Build(id string, ts time.Time) Photo {
	ids := make([]string, 0, len(in.MemberIDs))
	ids = append(ids, in.MemberIDs...)
	return Photo{
		ID:        id,
		URL:       deref(in.URL),
		Caption:   in.Caption,
		MemberIDs: ids,
		Timestamp: ts,
	}
}
