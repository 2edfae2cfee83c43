package usecase

import (
	"context"

	"devconnects/internal/domain/entity"
)

// CommentUsecase defines commenting on posts. Update and Delete are restricted to the comment's owner.
type CommentUsecase interface {
	Create(ctx context.Context, userID, postID, text string) (*entity.Comment, error)
	List(ctx context.Context, postID string) ([]*entity.Comment, error)
	Update(ctx context.Context, userID, commentID, text string) (*entity.Comment, error)
	Delete(ctx context.Context, userID, commentID string) error
}
