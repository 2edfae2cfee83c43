package usecase

import (
	"context"

	"devconnects/internal/domain/entity"
)

// UpdateProfileInput carries the editable profile fields. Nil fields are left unchanged.
type UpdateProfileInput struct {
	Avatar     *string
	About      *string
	Location   *string
	LinkedIn   *string
	GitHub     *string
	Website    *string
	Experience []entity.Experience
}

// ConnectionsOutput lists who follows a user and whom they follow.
type ConnectionsOutput struct {
	Followers []entity.UserSummary `json:"followers"`
	Following []entity.UserSummary `json:"following"`
}

// UserUsecase defines the follow graph and profile operations.
type UserUsecase interface {
	// Follow makes followerID follow targetID. Both edges are written atomically and the
	// target is notified.
	Follow(ctx context.Context, followerID, targetID string) error

	Unfollow(ctx context.Context, followerID, targetID string) error

	// Suggested lists users that userID does not follow yet.
	Suggested(ctx context.Context, userID string) ([]*entity.User, error)

	Connections(ctx context.Context, userID string) (*ConnectionsOutput, error)

	UpdateProfile(ctx context.Context, userID string, input *UpdateProfileInput) (*entity.User, error)

	GetProfile(ctx context.Context, userID string) (*UserProfile, error)

	ListUsers(ctx context.Context) ([]*UserProfile, error)
}
