package realtime

import (
	"log/slog"
	"net/http"
	"slices"

	"devconnects/config"
	"devconnects/internal/delivery/http/response"
	"devconnects/internal/domain/service"
	"devconnects/internal/errors"
	"devconnects/internal/infra/metrics"

	"github.com/fasthttp/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Handler upgrades authenticated requests to realtime connections.
type Handler struct {
	hub      *Hub
	auth     *Authenticator
	cfg      *config.RealtimeConfig
	upgrader websocket.Upgrader
	metrics  *metrics.Collector
	logger   *slog.Logger
}

type HandlerParams struct {
	fx.In

	Config       *config.Config
	Hub          *Hub
	TokenService service.TokenService
	Metrics      *metrics.Collector
	Logger       *slog.Logger
}

func NewHandler(params HandlerParams) *Handler {
	h := &Handler{
		hub:     params.Hub,
		auth:    NewAuthenticator(params.TokenService, params.Config.Session.CookieName),
		cfg:     params.Config.Realtime,
		metrics: params.Metrics,
		logger:  params.Logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}

	return h
}

// checkOrigin accepts every origin when no allow list is configured.
func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(h.cfg.AllowedOrigins) == 0 {
		return true
	}

	return slices.Contains(h.cfg.AllowedOrigins, "*") || slices.Contains(h.cfg.AllowedOrigins, origin)
}

// Serve authenticates before upgrading, so rejected clients get a JSON 401 instead of a closed socket.
func (h *Handler) Serve(c echo.Context) error {
	r := c.Request()

	identity, err := h.auth.Authenticate(r)
	if err != nil {
		return h.reject(c, err)
	}

	conn, err := h.upgrader.Upgrade(c.Response(), r, nil)
	if err != nil {
		h.logger.Warn("Realtime upgrade failed", slog.String("user_id", identity.UserID), slog.Any("error", err))

		// The upgrader has already written the error response.
		return nil
	}

	client := newClient(h.hub, conn, identity, h.cfg, h.logger)
	if err := h.hub.register(client); err != nil {
		client.logger.Warn("Realtime registration refused", slog.Any("error", err))
		_ = conn.Close()

		return nil
	}

	go client.writePump()
	go client.readPump()

	return nil
}

func (h *Handler) reject(c echo.Context, err error) error {
	_, effects, _ := Transition(StateConnecting, TriggerHandshakeRejected)

	handshakeErr, ok := errors.AsType[*HandshakeError](err)
	if !ok {
		handshakeErr = &HandshakeError{Reason: "invalid_token", Message: MessageInvalidToken, Err: err}
	}

	for _, effect := range effects {
		if effect != EffectReject {
			continue
		}
		h.metrics.HandshakeRejected(handshakeErr.Reason)
		h.logger.Debug("Realtime handshake rejected",
			slog.String("reason", handshakeErr.Reason),
			slog.String("remote_ip", c.RealIP()),
			slog.Any("error", handshakeErr.Err),
		)
	}

	return response.Unauthorized(c, "UNAUTHORIZED", handshakeErr.Message)
}
