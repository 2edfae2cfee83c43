package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"devconnects/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

const healthPingTimeout = 2 * time.Second

// Pinger is satisfied by *mongo.Client.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

type HealthHandlerParams struct {
	fx.In

	DB     Pinger
	Logger *slog.Logger
}

func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{db: params.DB, logger: params.Logger}
}

// Check reports 503 while the document store is unreachable.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx, readpref.Primary()); err != nil {
		h.logger.Warn("Health check failed", slog.Any("error", err))
		return response.Error(c, http.StatusServiceUnavailable, "UNAVAILABLE", "Database unreachable", nil)
	}

	return response.Success(c, http.StatusOK, "", response.Payload{"status": "ok"})
}
