package context

import (
	"devconnects/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// keyClaims holds the verified session of the caller.
const keyClaims = "session_claims"

// SetClaims stores the verified session on c.
func SetClaims(c echo.Context, claims *entity.SessionClaims) {
	c.Set(keyClaims, claims)
}

// GetClaims returns the verified session, if the route required one.
func GetClaims(c echo.Context) (*entity.SessionClaims, bool) {
	claims, ok := c.Get(keyClaims).(*entity.SessionClaims)

	return claims, ok && claims != nil
}

// GetUserID returns the hex id of the authenticated caller, or "".
func GetUserID(c echo.Context) string {
	if claims, ok := GetClaims(c); ok {
		return claims.UserID
	}

	return ""
}
