package models

import "time"

// Member is a profile of one of the gang's members.
type Member struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Nickname        string    `json:"nickname"`
	Classification  string    `json:"classification"`
	Description     string    `json:"description"`
	Characteristics []string  `json:"characteristics"`
	CurrentStatus   string    `json:"current_status"`
	Role            string    `json:"role"`
	PhotoURL        *string   `json:"photo_url"`
	CreatedAt       time.Time `json:"created_at"`
}

// MemberCreate is the accepted body for creating a member. Pointers let the
// validator tell a missing key (rejected) from an empty string (accepted).
type MemberCreate struct {
	Name            *string  `json:"name" yaml:"name" binding:"required"`
	Nickname        *string  `json:"nickname" yaml:"nickname" binding:"required"`
	Classification  *string  `json:"classification" yaml:"classification" binding:"required"`
	Description     *string  `json:"description" yaml:"description" binding:"required"`
	Characteristics []string `json:"characteristics" yaml:"characteristics" binding:"required"`
	CurrentStatus   *string  `json:"current_status" yaml:"current_status" binding:"required"`
	Role            *string  `json:"role" yaml:"role" binding:"required"`
	PhotoURL        *string  `json:"photo_url" yaml:"photo_url"`
}

// Build returns the full record for a validated create body.
func (in MemberCreate) Build(id string, createdAt time.Time) Member {
	return Member{
		ID:              id,
		Name:            deref(in.Name),
		Nickname:        deref(in.Nickname),
		Classification:  deref(in.Classification),
		Description:     deref(in.Description),
		Characteristics: append([]string{}, in.Characteristics...),
		CurrentStatus:   deref(in.CurrentStatus),
		Role:            deref(in.Role),
		PhotoURL:        in.PhotoURL,
		CreatedAt:       createdAt,
	}
}

// MemberUpdate is a partial update. A nil field is left untouched.
type MemberUpdate struct {
	Name            *string  `json:"name"`
	Nickname        *string  `json:"nickname"`
	Classification  *string  `json:"classification"`
	Description     *string  `json:"description"`
	Characteristics []string `json:"characteristics"`
	CurrentStatus   *string  `json:"current_status"`
	Role            *string  `json:"role"`
	PhotoURL        *string  `json:"photo_url"`
}

// Fields returns the stored field names and values to change. It is empty
// when the update carries nothing.
func (u MemberUpdate) Fields() map[string]any {
	out := map[string]any{}
	setString(out, "name", u.Name)
	setString(out, "nickname", u.Nickname)
	setString(out, "classification", u.Classification)
	setString(out, "description", u.Description)
	if u.Characteristics != nil {
		out["characteristics"] = append([]string{}, u.Characteristics...)
	}
	setString(out, "current_status", u.CurrentStatus)
	setString(out, "role", u.Role)
	setString(out, "photo_url", u.PhotoURL)
	return out
}

// Apply merges the update into m in place. id and created_at never change.
func (u MemberUpdate) Apply(m *Member) {
	if u.Name != nil {
		m.Name = *u.Name
	}
	if u.Nickname != nil {
		m.Nickname = *u.Nickname
	}
	if u.Classification != nil {
		m.Classification = *u.Classification
	}
	if u.Description != nil {
		m.Description = *u.Description
	}
	if u.Characteristics != nil {
		m.Characteristics = append([]string{}, u.Characteristics...)
	}
	if u.CurrentStatus != nil {
		m.CurrentStatus = *u.CurrentStatus
	}
	if u.Role != nil {
		m.Role = *u.Role
	}
	if u.PhotoURL != nil {
		v := *u.PhotoURL
		m.PhotoURL = &v
	}
}

func setString(out map[string]any, key string, v *string) {
	if v != nil {
		out[key] = *v
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
