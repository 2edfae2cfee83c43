package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "devconnects/internal/delivery/context"
	"devconnects/internal/delivery/http/response"
	"devconnects/internal/errors"
	"devconnects/internal/infra/metrics"
	"devconnects/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MessageHandler is the REST entry to the message delivery path.
type MessageHandler struct {
	messageUC usecase.MessageUsecase
	metrics   *metrics.Collector
	logger    *slog.Logger
}

type MessageHandlerParams struct {
	fx.In

	MessageUC usecase.MessageUsecase
	Metrics   *metrics.Collector
	Logger    *slog.Logger
}

func NewMessageHandler(params MessageHandlerParams) *MessageHandler {
	return &MessageHandler{
		messageUC: params.MessageUC,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

type SendMessageRequest struct {
	Text string `json:"text" validate:"max=5000"`
}

// Send replies with the stored message under the "message" key, as clients expect.
func (h *MessageHandler) Send(c echo.Context) error {
	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid message input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	msg, err := h.messageUC.Send(c.Request().Context(), deliverycontext.GetUserID(c), c.Param("receiverId"), req.Text)
	if err != nil {
		return errors.WithStack(err)
	}
	h.metrics.MessagePersisted()

	return response.Success(c, http.StatusCreated, "", response.Payload{"message": msg})
}

func (h *MessageHandler) History(c echo.Context) error {
	messages, err := h.messageUC.History(c.Request().Context(), deliverycontext.GetUserID(c), c.Param("receiverId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "", response.Payload{"messages": messages})
}

func (h *MessageHandler) ChatUsers(c echo.Context) error {
	partners, err := h.messageUC.ChatPartners(c.Request().Context(), deliverycontext.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "", response.Payload{"users": partners})
}
