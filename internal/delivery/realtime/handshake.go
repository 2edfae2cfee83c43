package realtime

import (
	"net/http"
	"strings"

	"devconnects/internal/domain/entity"
	"devconnects/internal/domain/service"
	"devconnects/internal/errors"
)

// Handshake rejection messages, as seen by clients.
const (
	MessageNoToken      = "No token provided"
	MessageInvalidToken = "Invalid token"
)

// tokenCookies are read in order; the first non-empty one is used.
var tokenCookies = []string{"token", "accessToken", "jwt"}

// Identity is the verified caller bound to a connection for its whole lifetime.
type Identity struct {
	UserID string
	Email  string
	Claims *entity.SessionClaims
}

// HandshakeError is returned when a connection must be refused before the upgrade.
type HandshakeError struct {
	Reason  string // Metric label: no_token or invalid_token.
	Message string
	Err     error
}

func (e *HandshakeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *HandshakeError) Unwrap() error {
	return e.Err
}

// Authenticator turns an upgrade request into a verified Identity.
type Authenticator struct {
	tokens  service.TokenService
	cookies []string
}

// NewAuthenticator checks cookieName (the one the REST layer sets) first, then the legacy names.
func NewAuthenticator(tokens service.TokenService, cookieName string) *Authenticator {
	cookies := make([]string, 0, len(tokenCookies)+1)
	if cookieName != "" {
		cookies = append(cookies, cookieName)
	}
	for _, name := range tokenCookies {
		if name != cookieName {
			cookies = append(cookies, name)
		}
	}

	return &Authenticator{tokens: tokens, cookies: cookies}
}

func (a *Authenticator) Authenticate(r *http.Request) (*Identity, error) {
	token := a.tokenFromRequest(r)
	if token == "" {
		return nil, &HandshakeError{Reason: "no_token", Message: MessageNoToken}
	}

	claims, err := a.tokens.Verify(token)
	if err != nil {
		return nil, &HandshakeError{Reason: "invalid_token", Message: MessageInvalidToken, Err: err}
	}
	if _, ok := claims.Identity(); !ok {
		return nil, &HandshakeError{Reason: "invalid_token", Message: MessageInvalidToken, Err: errors.New("token subject is not a user id")}
	}

	return &Identity{UserID: claims.UserID, Email: claims.Email, Claims: claims}, nil
}

// tokenFromRequest reads the session cookies, then the token query parameter for non-browser clients.
func (a *Authenticator) tokenFromRequest(r *http.Request) string {
	for _, name := range a.cookies {
		if cookie, err := r.Cookie(name); err == nil {
			if v := strings.TrimSpace(cookie.Value); v != "" {
				return v
			}
		}
	}

	return strings.TrimSpace(r.URL.Query().Get("token"))
}
