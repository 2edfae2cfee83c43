package handler

import (
	"net/http"
	"testing"
	"time"

	"devconnects/internal/domain/entity"
	domainerrors "devconnects/internal/domain/errors"
	"devconnects/internal/infra/metrics"
	mockUC "devconnects/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type messageHandlerFixtures struct {
	e         *echo.Echo
	messageUC *mockUC.MockMessageUsecase
	userID    string
}

func createTestMessageHandler(t *testing.T) *messageHandlerFixtures {
	messageUC := mockUC.NewMockMessageUsecase(t)
	h := NewMessageHandler(MessageHandlerParams{
		MessageUC: messageUC,
		Metrics:   metrics.NewCollector(prometheus.NewRegistry()),
		Logger:    discardLogger(),
	})
	userID := entity.NewID().Hex()

	e := newTestEcho()
	g := e.Group("/api/messages", asUser(userID))
	g.GET("/chat-users", h.ChatUsers)
	g.POST("/:receiverId", h.Send)
	g.GET("/:receiverId", h.History)

	return &messageHandlerFixtures{e: e, messageUC: messageUC, userID: userID}
}

func TestMessageHandler_Send(t *testing.T) {
	f := createTestMessageHandler(t)
	receiver := entity.NewID()
	f.messageUC.EXPECT().Send(mock.Anything, f.userID, receiver.Hex(), "hello").Return(&entity.Message{
		ID:       entity.NewID(),
		Receiver: entity.UserSummary{ID: receiver, Name: "Bob"},
		Text:     "hello",
	}, nil)

	rec := serve(f.e, http.MethodPost, "/api/messages/"+receiver.Hex(), `{"text":"hello"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	msg, ok := body["message"].(map[string]any)
	require.True(t, ok, "message carries the stored message object")
	assert.Equal(t, "hello", msg["text"])
	assert.Contains(t, body, "meta")
}

func TestMessageHandler_SendErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "bad receiver", err: domainerrors.ErrInvalidIdentity, wantStatus: http.StatusBadRequest, wantMsg: "Invalid user id"},
		{name: "empty text", err: domainerrors.ErrValidationFailed, wantStatus: http.StatusBadRequest, wantMsg: "Invalid data"},
		{name: "store down", err: domainerrors.ErrInternalError, wantStatus: http.StatusInternalServerError, wantMsg: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestMessageHandler(t)
			f.messageUC.EXPECT().Send(mock.Anything, f.userID, "abc", mock.Anything).Return(nil, tt.err)

			rec := serve(f.e, http.MethodPost, "/api/messages/abc", `{"text":" "}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decode(t, rec)["message"])
		})
	}
}

func TestMessageHandler_History(t *testing.T) {
	f := createTestMessageHandler(t)
	other := entity.NewID().Hex()
	now := time.Now()
	f.messageUC.EXPECT().History(mock.Anything, f.userID, other).Return([]*entity.Message{
		{Text: "first", CreatedAt: now},
		{Text: "second", CreatedAt: now.Add(time.Second)},
	}, nil)

	rec := serve(f.e, http.MethodGet, "/api/messages/"+other, "")

	require.Equal(t, http.StatusOK, rec.Code)
	messages := decode(t, rec)["messages"].([]any)
	require.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].(map[string]any)["text"])
}

func TestMessageHandler_ChatUsersRouteWinsOverReceiverParam(t *testing.T) {
	f := createTestMessageHandler(t)
	f.messageUC.EXPECT().ChatPartners(mock.Anything, f.userID).Return([]*entity.ChatPartner{
		{Name: "Bob", LastMessage: "see you"},
	}, nil)

	rec := serve(f.e, http.MethodGet, "/api/messages/chat-users", "")

	require.Equal(t, http.StatusOK, rec.Code)
	users := decode(t, rec)["users"].([]any)
	require.Len(t, users, 1)
	assert.Equal(t, "see you", users[0].(map[string]any)["lastMessage"])
}
