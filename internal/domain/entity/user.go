package entity

import (
	"time"
)

// User is an account of the network. PasswordHash is empty for accounts created without a password.
type User struct {
	ID           ID           `json:"_id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	DOB          time.Time    `json:"dob"`
	Avatar       string       `json:"avatar,omitempty"`
	About        string       `json:"about,omitempty"`
	Location     string       `json:"location,omitempty"`
	LinkedIn     string       `json:"linkedin,omitempty"`
	GitHub       string       `json:"github,omitempty"`
	Website      string       `json:"website,omitempty"`
	Experience   []Experience `json:"experience"`
	Followers    []ID         `json:"followers"`
	Following    []ID         `json:"following"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Experience is one entry of a user's work history. To is nil while the position is ongoing.
type Experience struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Description string     `json:"description,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
}

// UserSummary is the display projection of a user embedded in messages, posts and notifications.
type UserSummary struct {
	ID     ID     `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

// ProfileUpdate carries the editable profile fields. Nil fields are left unchanged.
type ProfileUpdate struct {
	Avatar     *string
	About      *string
	Location   *string
	LinkedIn   *string
	GitHub     *string
	Website    *string
	Experience []Experience
}

// IsFollowing reports whether u follows target.
func (u *User) IsFollowing(target ID) bool {
	for _, id := range u.Following {
		if id == target {
			return true
		}
	}

	return false
}

// Summary returns the display projection of u.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Avatar: u.Avatar}
}
