package repository

import (
	"time"

	"github.com/ramonfbmiranda/arquivosmaverick/internal/models"
)

// Stored document shapes. None of them carries _id; reads also project it out.

type memberDocument struct {
	ID              string   `bson:"id"`
	Name            string   `bson:"name"`
	Nickname        string   `bson:"nickname"`
	Classification  string   `bson:"classification"`
	Description     string   `bson:"description"`
	Characteristics []string `bson:"characteristics"`
	CurrentStatus   string   `bson:"current_status"`
	Role            string   `bson:"role"`
	PhotoURL        *string  `bson:"photo_url"`
	CreatedAt       isoTime  `bson:"created_at"`
}

func newMemberDocument(m *models.Member) memberDocument {
	chars := m.Characteristics
	if chars == nil {
		chars = []string{}
	}
	return memberDocument{
		ID:              m.ID,
		Name:            m.Name,
		Nickname:        m.Nickname,
		Classification:  m.Classification,
		Description:     m.Description,
		Characteristics: chars,
		CurrentStatus:   m.CurrentStatus,
		Role:            m.Role,
		PhotoURL:        m.PhotoURL,
		CreatedAt:       isoTime(m.CreatedAt),
	}
}

func (d memberDocument) model() models.Member {
	chars := d.Characteristics
	if chars == nil {
		chars = []string{}
	}
	return models.Member{
		ID:              d.ID,
		Name:            d.Name,
		Nickname:        d.Nickname,
		Classification:  d.Classification,
		Description:     d.Description,
		Characteristics: chars,
		CurrentStatus:   d.CurrentStatus,
		Role:            d.Role,
		PhotoURL:        d.PhotoURL,
		CreatedAt:       time.Time(d.CreatedAt),
	}
}

type commentDocument struct {
	ID         string  `bson:"id"`
	MemberID   string  `bson:"member_id"`
	AuthorName string  `bson:"author_name"`
	Text       string  `bson:"text"`
	Timestamp  isoTime `bson:"timestamp"`
}

func newCommentDocument(c *models.Comment) commentDocument {
	return commentDocument{
		ID:         c.ID,
		MemberID:   c.MemberID,
		AuthorName: c.AuthorName,
		Text:       c.Text,
		Timestamp:  isoTime(c.Timestamp),
	}
}

func (d commentDocument) model() models.Comment {
	return models.Comment{
		ID:         d.ID,
		MemberID:   d.MemberID,
		AuthorName: d.AuthorName,
		Text:       d.Text,
		Timestamp:  time.Time(d.Timestamp),
	}
}

type quoteDocument struct {
	ID        string  `bson:"id"`
	MemberID  *string `bson:"member_id"`
	Text      string  `bson:"text"`
	Context   *string `bson:"context"`
	CreatedAt isoTime `bson:"created_at"`
}

func newQuoteDocument(q *models.Quote) quoteDocument {
	return quoteDocument{
		ID:        q.ID,
		MemberID:  q.MemberID,
		Text:      q.Text,
		Context:   q.Context,
		CreatedAt: isoTime(q.CreatedAt),
	}
}

func (d quoteDocument) model() models.Quote {
	return models.Quote{
		ID:        d.ID,
		MemberID:  d.MemberID,
		Text:      d.Text,
		Context:   d.Context,
		CreatedAt: time.Time(d.CreatedAt),
	}
}

type photoDocument struct {
	ID        string   `bson:"id"`
	URL       string   `bson:"url"`
	Caption   *string  `bson:"caption"`
	MemberIDs []string `bson:"member_ids"`
	Timestamp isoTime  `bson:"timestamp"`
}

func newPhotoDocument(p *models.Photo) photoDocument {
	ids := p.MemberIDs
	if ids == nil {
		ids = []string{}
	}
	return photoDocument{
		ID:        p.ID,
		URL:       p.URL,
		Caption:   p.Caption,
		MemberIDs: ids,
		Timestamp: isoTime(p.Timestamp),
	}
}

func (d photoDocument) model() models.Photo {
	ids := d.MemberIDs
	if ids == nil {
		ids = []string{}
	}
	return models.Photo{
		ID:        d.ID,
		URL:       d.URL,
		Caption:   d.Caption,
		MemberIDs: ids,
		Timestamp: time.Time(d.Timestamp),
	}
}
