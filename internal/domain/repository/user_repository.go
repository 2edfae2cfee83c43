// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"devconnects/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when a unique field (email, name) is already taken.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository persists accounts and the follow graph.
type UserRepository interface {
	// Create stores a new user and assigns its ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	FindByID(ctx context.Context, id entity.ID) (*entity.User, error)

	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns every user except those in exclude, newest first.
	List(ctx context.Context, exclude []entity.ID) ([]*entity.User, error)

	// FindSummaries resolves display fields for ids. Unknown ids are skipped.
	FindSummaries(ctx context.Context, ids []entity.ID) ([]entity.UserSummary, error)

	// UpdateProfile applies the non-nil fields of update and returns the stored user.
	UpdateProfile(ctx context.Context, id entity.ID, update *entity.ProfileUpdate) (*entity.User, error)

	// Follow adds followee to follower's following set and follower to followee's followers set.
	Follow(ctx context.Context, followerID, followeeID entity.ID) error

	// Unfollow reverses Follow.
	Unfollow(ctx context.Context, followerID, followeeID entity.ID) error
}
