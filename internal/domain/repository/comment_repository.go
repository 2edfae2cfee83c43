package repository

import (
	"context"
	"errors"

	"devconnects/internal/domain/entity"
)

// ErrCommentNotFound is returned when no comment matches the lookup.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository persists comments on posts.
type CommentRepository interface {
	// Create stores c, using only the id of c.User, and assigns ID and timestamps.
	Create(ctx context.Context, c *entity.Comment) error

	// FindByID returns the comment with its author resolved.
	FindByID(ctx context.Context, id entity.ID) (*entity.Comment, error)

	// ListByPost returns the comments of a post, oldest first.
	ListByPost(ctx context.Context, postID entity.ID) ([]*entity.Comment, error)

	// UpdateText replaces the text and returns the stored comment.
	UpdateText(ctx context.Context, id entity.ID, text string) (*entity.Comment, error)

	Delete(ctx context.Context, id entity.ID) error
}
