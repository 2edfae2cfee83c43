// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"devconnects/config"
	"devconnects/internal/domain/entity"
	domainerrors "devconnects/internal/domain/errors"
	"devconnects/internal/domain/service"
	"devconnects/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtService is the HS256 implementation of service.TokenService.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService builds the session token issuer. An empty secret is a startup error,
// so the process never serves protected routes or the realtime channel without one.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := 7 * 24 * time.Hour
	if cfg.Session != nil && cfg.Session.TTL > 0 {
		ttl = cfg.Session.TTL
	}

	return newJWTService(cfg.SecretKey.Session, ttl, time.Now), nil
}

func newJWTService(secret string, ttl time.Duration, now func() time.Time) *jwtService {
	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}
}

// Issue signs {sub, id, email, iat, exp}. "id" mirrors "sub" for older clients.
func (s *jwtService) Issue(user *entity.User) (string, *entity.SessionClaims, error) {
	if user == nil || user.ID.IsZero() {
		return "", nil, errors.New("cannot issue a token without a user id")
	}

	issuedAt := s.now().Truncate(time.Second)
	claims := &entity.SessionClaims{
		UserID:    user.ID.Hex(),
		Email:     user.Email,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(s.ttl),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   claims.UserID,
		"id":    claims.UserID,
		"email": claims.Email,
		"iat":   claims.IssuedAt.Unix(),
		"exp":   claims.ExpiresAt.Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, errors.Wrap(err, "sign session token")
	}

	return signed, claims, nil
}

// Verify checks the signature with the library and the expiry against the service clock,
// so a token is valid strictly before exp and rejected from exp on.
func (s *jwtService) Verify(tokenString string) (*entity.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("unexpected claims type")
	}

	userID, _ := mapClaims["sub"].(string)
	if userID == "" {
		userID, _ = mapClaims["id"].(string)
	}
	if _, valid := entity.ParseID(userID); !valid {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("subject is not a user id")
	}

	exp, err := mapClaims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("missing exp claim")
	}

	if !s.now().Before(exp.Time) {
		return nil, domainerrors.ErrTokenExpired.WrapMessage("expired at " + exp.Time.UTC().Format(time.RFC3339))
	}

	claims := &entity.SessionClaims{
		UserID:    userID,
		ExpiresAt: exp.Time,
	}
	claims.Email, _ = mapClaims["email"].(string)
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}

	return claims, nil
}

// TTL returns the lifetime of issued tokens.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
