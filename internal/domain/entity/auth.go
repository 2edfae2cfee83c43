package entity

import (
	"time"
)

// SessionClaims is the identity asserted by a session token.
type SessionClaims struct {
	UserID    string    // Hex identity of the user the token was issued to.
	Email     string    // Email at the time of issue.
	IssuedAt  time.Time // iat
	ExpiresAt time.Time // exp; the token is rejected from this instant on.
}

// Identity returns the verified user id.
func (c *SessionClaims) Identity() (ID, bool) {
	return ParseID(c.UserID)
}
