package repository

import (
	"context"
	"errors"

	"devconnects/internal/domain/entity"
)

// ErrPostNotFound is returned when no post matches the lookup.
var ErrPostNotFound = errors.New("post not found")

// PostRepository persists posts together with their like and comment references.
type PostRepository interface {
	// Create stores p, using only the id of p.Author, and assigns ID and timestamps.
	Create(ctx context.Context, p *entity.Post) error

	// FindByID returns the post with its author resolved.
	FindByID(ctx context.Context, id entity.ID) (*entity.Post, error)

	// List returns one page of posts matching filter, newest first, and the total match count.
	List(ctx context.Context, filter entity.PostFilter, page entity.PageRequest) ([]*entity.Post, int64, error)

	// Update stores the title, content and images of p.
	Update(ctx context.Context, p *entity.Post) error

	Delete(ctx context.Context, id entity.ID) error

	// ToggleLike removes userID's like if present, adds it otherwise, and returns the resulting likes.
	ToggleLike(ctx context.Context, postID, userID entity.ID) (likes []entity.ID, liked bool, err error)

	AddComment(ctx context.Context, postID, commentID entity.ID) error

	RemoveComment(ctx context.Context, postID, commentID entity.ID) error
}
