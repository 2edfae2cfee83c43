package auth

import (
	"testing"
	"time"

	"devconnects/config"
	"devconnects/internal/domain/entity"
	domainerrors "devconnects/internal/domain/errors"
	"devconnects/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_session_secret_key_very_long_for_testing"

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newTestUser() *entity.User {
	return &entity.User{ID: entity.NewID(), Email: "ada@example.com", Name: "ada"}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)

	cfg := &config.Config{}
	cfg.SecretKey.Session = testSecret
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, svc.TTL())
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newJWTService(testSecret, 7*24*time.Hour, clock.Now)
	user := newTestUser()

	token, issued, err := svc.Issue(user)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), issued.UserID)
	assert.Equal(t, clock.now.Add(7*24*time.Hour), issued.ExpiresAt)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.True(t, claims.IssuedAt.Equal(clock.now))

	id, ok := claims.Identity()
	assert.True(t, ok)
	assert.Equal(t, user.ID, id)
}

func TestJWTService_ExpiryBoundary(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newJWTService(testSecret, time.Hour, clock.Now)

	token, issued, err := svc.Issue(newTestUser())
	require.NoError(t, err)

	clock.now = issued.ExpiresAt.Add(-time.Second)
	_, err = svc.Verify(token)
	assert.NoError(t, err)

	for _, at := range []time.Time{issued.ExpiresAt, issued.ExpiresAt.Add(time.Second)} {
		clock.now = at
		_, err = svc.Verify(token)
		assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired), "at %s", at)
	}
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	issuer := newJWTService("another_secret", time.Hour, clock.Now)
	verifier := newJWTService(testSecret, time.Hour, clock.Now)

	token, _, err := issuer.Issue(newTestUser())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_RejectsMalformedTokens(t *testing.T) {
	svc := newJWTService(testSecret, time.Hour, time.Now)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": entity.NewID().Hex(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": entity.NewID().Hex(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":    "clearly-not-a-jwt-token-format",
		"none alg":   unsigned,
		"no subject": noSubject,
		"no expiry":  noExpiry,
	} {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.Verify(token)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
		})
	}
}

func TestJWTService_AcceptsLegacyIDClaim(t *testing.T) {
	svc := newJWTService(testSecret, time.Hour, time.Now)
	userID := entity.NewID().Hex()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    userID,
		"email": "legacy@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWTService_IssueRequiresUser(t *testing.T) {
	svc := newJWTService(testSecret, time.Hour, time.Now)

	_, _, err := svc.Issue(&entity.User{})
	assert.Error(t, err)
}
