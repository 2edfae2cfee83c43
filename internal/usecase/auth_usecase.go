// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"devconnects/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	DOB      time.Time
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput carries the session token to set as a cookie.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// UserProfile is a user with follow lists resolved to display fields.
type UserProfile struct {
	*entity.User
	Followers []entity.UserSummary `json:"followers"`
	Following []entity.UserSummary `json:"following"`
}

// ProfileOutput is the signed-in user's profile and their posts.
type ProfileOutput struct {
	User  *UserProfile
	Posts []*entity.Post
}

// AuthUsecase defines account creation and session issuance.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Profile(ctx context.Context, userID string) (*ProfileOutput, error)
}
