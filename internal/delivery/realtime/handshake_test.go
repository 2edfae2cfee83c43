package realtime

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"devconnects/internal/domain/entity"
	domainerrors "devconnects/internal/domain/errors"
	mockSvc "devconnects/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticator_CookieOrder(t *testing.T) {
	userID := entity.NewID().Hex()
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().Verify("from-token").Return(&entity.SessionClaims{UserID: userID}, nil)

	req := httptest.NewRequest(http.MethodGet, "/ws?token=from-query", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "from-jwt"})
	req.AddCookie(&http.Cookie{Name: "token", Value: "from-token"})
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: "from-access"})

	identity, err := NewAuthenticator(tokens, "token").Authenticate(req)

	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
}

func TestAuthenticator_Fallbacks(t *testing.T) {
	userID := entity.NewID().Hex()

	tests := []struct {
		name  string
		setup func(*http.Request)
		want  string
	}{
		{name: "accessToken cookie", setup: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "accessToken", Value: "a"}) }, want: "a"},
		{name: "jwt cookie", setup: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "jwt", Value: "j"}) }, want: "j"},
		{name: "configured cookie", setup: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "session", Value: "s"}) }, want: "s"},
		{name: "query parameter", setup: func(r *http.Request) { r.URL.RawQuery = "token=q" }, want: "q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockSvc.NewMockTokenService(t)
			tokens.EXPECT().Verify(tt.want).Return(&entity.SessionClaims{UserID: userID}, nil)

			req := httptest.NewRequest(http.MethodGet, "/ws", nil)
			tt.setup(req)

			_, err := NewAuthenticator(tokens, "session").Authenticate(req)
			require.NoError(t, err)
		})
	}
}

func TestAuthenticator_Rejections(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ws", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "  "})

		_, err := NewAuthenticator(mockSvc.NewMockTokenService(t), "token").Authenticate(req)

		var handshakeErr *HandshakeError
		require.ErrorAs(t, err, &handshakeErr)
		assert.Equal(t, MessageNoToken, handshakeErr.Message)
		assert.Equal(t, "no_token", handshakeErr.Reason)
	})

	t.Run("expired", func(t *testing.T) {
		tokens := mockSvc.NewMockTokenService(t)
		tokens.EXPECT().Verify("old").Return(nil, domainerrors.ErrTokenExpired)
		req := httptest.NewRequest(http.MethodGet, "/ws", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "old"})

		_, err := NewAuthenticator(tokens, "token").Authenticate(req)

		var handshakeErr *HandshakeError
		require.ErrorAs(t, err, &handshakeErr)
		assert.Equal(t, MessageInvalidToken, handshakeErr.Message)
		assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	})

	t.Run("subject is not a user id", func(t *testing.T) {
		tokens := mockSvc.NewMockTokenService(t)
		tokens.EXPECT().Verify("odd").Return(&entity.SessionClaims{UserID: "admin"}, nil)
		req := httptest.NewRequest(http.MethodGet, "/ws?token=odd", nil)

		_, err := NewAuthenticator(tokens, "token").Authenticate(req)

		var handshakeErr *HandshakeError
		require.ErrorAs(t, err, &handshakeErr)
		assert.Equal(t, "invalid_token", handshakeErr.Reason)
	})
}

func TestCanJoin(t *testing.T) {
	me, other := entity.NewID().Hex(), entity.NewID().Hex()
	third := entity.NewID().Hex()

	assert.True(t, canJoin(me, me))
	assert.True(t, canJoin(me, entity.ConversationRoomID(me, other)))
	assert.False(t, canJoin(me, other))
	assert.False(t, canJoin(me, entity.ConversationRoomID(other, third)))
	assert.False(t, canJoin(me, "lobby"))

	a, b := me, other
	if a < b {
		a, b = b, a
	}
	assert.False(t, canJoin(me, a+"_"+b), "non-canonical order")
}
