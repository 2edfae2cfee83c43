package middleware

import (
	"strings"

	"devconnects/config"
	deliverycontext "devconnects/internal/delivery/context"
	domainerrors "devconnects/internal/domain/errors"
	"devconnects/internal/domain/service"
	"devconnects/internal/errors"

	"github.com/labstack/echo/v4"
)

// legacyTokenCookies are accepted after the configured session cookie.
var legacyTokenCookies = []string{"token", "accessToken", "jwt"}

// AuthMiddleware resolves the caller's session from its cookie or bearer token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cookies  []string
}

func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	cookieName := cfg.Session.CookieName
	cookies := []string{cookieName}
	for _, name := range legacyTokenCookies {
		if name != cookieName {
			cookies = append(cookies, name)
		}
	}

	return &AuthMiddleware{tokenSvc: tokenSvc, cookies: cookies}
}

// Authenticate rejects requests without a valid session and stores the claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.tokenFrom(c)
		if token == "" {
			return domainerrors.ErrNoToken
		}

		claims, err := m.tokenSvc.Verify(token)
		if err != nil {
			return errors.WithStack(err)
		}
		if _, ok := claims.Identity(); !ok {
			return domainerrors.ErrInvalidToken
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

func (m *AuthMiddleware) tokenFrom(c echo.Context) string {
	for _, name := range m.cookies {
		if cookie, err := c.Cookie(name); err == nil {
			if v := strings.TrimSpace(cookie.Value); v != "" {
				return v
			}
		}
	}

	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}

	return ""
}
