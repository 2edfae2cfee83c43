package handler

import (
	"net/http"
	"testing"

	"devconnects/internal/domain/entity"
	domainerrors "devconnects/internal/domain/errors"
	mockUC "devconnects/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationHandler(t *testing.T) (*echo.Echo, *mockUC.MockNotificationUsecase, string) {
	notificationUC := mockUC.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC})
	userID := entity.NewID().Hex()

	e := newTestEcho()
	g := e.Group("/api/notifications", asUser(userID))
	g.GET("/get", h.List)
	g.PUT("/:notificationId/read", h.MarkRead)
	g.DELETE("/:notificationId", h.Delete)

	return e, notificationUC, userID
}

func TestNotificationHandler_List(t *testing.T) {
	e, notificationUC, userID := createTestNotificationHandler(t)
	notificationUC.EXPECT().List(mock.Anything, userID).Return([]*entity.Notification{
		{Type: entity.NotificationLike},
		{Type: entity.NotificationFollow, Read: true},
	}, nil)

	rec := serve(e, http.MethodGet, "/api/notifications/get", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.EqualValues(t, 2, body["count"])
	assert.Equal(t, "like", body["notifications"].([]any)[0].(map[string]any)["type"])
}

func TestNotificationHandler_MarkReadIsScopedToRecipient(t *testing.T) {
	e, notificationUC, userID := createTestNotificationHandler(t)
	mine, theirs := entity.NewID().Hex(), entity.NewID().Hex()
	notificationUC.EXPECT().MarkRead(mock.Anything, userID, mine).Return(&entity.Notification{Read: true}, nil)
	notificationUC.EXPECT().MarkRead(mock.Anything, userID, theirs).Return(nil, domainerrors.ErrNotificationNotFound)

	rec := serve(e, http.MethodPut, "/api/notifications/"+mine+"/read", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["notification"].(map[string]any)["read"])

	rec = serve(e, http.MethodPut, "/api/notifications/"+theirs+"/read", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNotificationHandler_Delete(t *testing.T) {
	e, notificationUC, userID := createTestNotificationHandler(t)
	id := entity.NewID().Hex()
	notificationUC.EXPECT().Delete(mock.Anything, userID, id).Return(nil)

	rec := serve(e, http.MethodDelete, "/api/notifications/"+id, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
