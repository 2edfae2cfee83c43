package usecase

import (
	"context"

	"devconnects/internal/domain/entity"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 50
)

type CreatePostInput struct {
	Title   string
	Content string
	Images  []string
}

// UpdatePostInput changes the given fields. A nil Images keeps the current images.
type UpdatePostInput struct {
	Title   *string
	Content *string
	Images  []string
}

// PostQuery selects a page of posts. Empty ids do not filter.
type PostQuery struct {
	AuthorID string
	LikedBy  string
	Page     int
	Limit    int
}

type PostPage struct {
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
	Count       int64          `json:"count"`
	Posts       []*entity.Post `json:"posts"`
}

type LikeOutput struct {
	Liked      bool        `json:"liked"`
	LikesCount int         `json:"likesCount"`
	Likes      []entity.ID `json:"likes"`
}

// PostUsecase defines publishing and liking posts.
type PostUsecase interface {
	Create(ctx context.Context, authorID string, input *CreatePostInput) (*entity.Post, error)
	List(ctx context.Context, query *PostQuery) (*PostPage, error)

	// Update and Delete are restricted to the post's author.
	Update(ctx context.Context, userID, postID string, input *UpdatePostInput) (*entity.Post, error)
	Delete(ctx context.Context, userID, postID string) error

	// ToggleLike likes or unlikes the post. A new like notifies the author.
	ToggleLike(ctx context.Context, userID, postID string) (*LikeOutput, error)
}
