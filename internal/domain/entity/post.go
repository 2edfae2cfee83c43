package entity

import (
	"time"
)

// Post is an article published by a user.
type Post struct {
	ID        ID          `json:"_id"`
	Author    UserSummary `json:"author"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Images    []string    `json:"images"`
	Likes     []ID        `json:"likes"`
	Comments  []ID        `json:"comments"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// LikedBy reports whether userID has liked p.
func (p *Post) LikedBy(userID ID) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}

	return false
}

// PostFilter narrows a post listing. Zero fields do not filter.
type PostFilter struct {
	AuthorID ID
	LikedBy  ID
}

// PageRequest is a 1-based page of a listing.
type PageRequest struct {
	Page  int
	Limit int
}

// Skip returns the number of records before the page.
func (p PageRequest) Skip() int64 {
	if p.Page < 1 {
		return 0
	}

	return int64((p.Page - 1) * p.Limit)
}
