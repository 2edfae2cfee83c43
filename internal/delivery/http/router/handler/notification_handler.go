package handler

import (
	"net/http"

	deliverycontext "devconnects/internal/delivery/context"
	"devconnects/internal/delivery/http/response"
	"devconnects/internal/errors"
	"devconnects/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandler lets the caller read and manage their own notifications.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
}

type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
}

func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{notificationUC: params.NotificationUC}
}

func (h *NotificationHandler) List(c echo.Context) error {
	notifications, err := h.notificationUC.List(c.Request().Context(), deliverycontext.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "", response.Payload{
		"count":         len(notifications),
		"notifications": notifications,
	})
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	notification, err := h.notificationUC.MarkRead(c.Request().Context(), deliverycontext.GetUserID(c), c.Param("notificationId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Notification marked as read", response.Payload{"notification": notification})
}

func (h *NotificationHandler) Delete(c echo.Context) error {
	if err := h.notificationUC.Delete(c.Request().Context(), deliverycontext.GetUserID(c), c.Param("notificationId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Notification deleted", nil)
}
