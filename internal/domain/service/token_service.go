package service

import (
	"time"

	"devconnects/internal/domain/entity"
)

// TokenService issues and verifies stateless session tokens.
// Tokens cannot be revoked; expiry alone bounds their lifetime.
type TokenService interface {
	// Issue signs a token asserting the user's id and email, expiring after TTL.
	Issue(user *entity.User) (token string, claims *entity.SessionClaims, err error)

	// Verify checks signature and expiry. It fails with ErrInvalidToken or ErrTokenExpired.
	Verify(token string) (*entity.SessionClaims, error)

	// TTL returns the lifetime of issued tokens.
	TTL() time.Duration
}
