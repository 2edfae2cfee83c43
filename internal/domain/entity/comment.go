package entity

import (
	"time"
)

// Comment is a reply by a user to a post.
type Comment struct {
	ID        ID          `json:"_id"`
	User      UserSummary `json:"user"`
	PostID    ID          `json:"post"`
	Text      string      `json:"text"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
