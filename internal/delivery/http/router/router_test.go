package router

import (
	"net/http"
	"testing"

	"devconnects/config"
	"devconnects/internal/delivery/http/middleware"
	"devconnects/internal/delivery/http/router/handler"
	"devconnects/internal/delivery/realtime"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	e := echo.New()
	NewRouter(RouterParams{
		Config:              cfg,
		Gatherer:            prometheus.NewRegistry(),
		AuthHandler:         &handler.AuthHandler{},
		UserHandler:         &handler.UserHandler{},
		PostHandler:         &handler.PostHandler{},
		CommentHandler:      &handler.CommentHandler{},
		MessageHandler:      &handler.MessageHandler{},
		NotificationHandler: &handler.NotificationHandler{},
		HealthHandler:       &handler.HealthHandler{},
		RealtimeHandler:     &realtime.Handler{},
		AuthMiddleware:      &middleware.AuthMiddleware{},
		RateLimitMiddleware: &middleware.RateLimitMiddleware{},
	}).RegisterRoutes(e)

	registered := map[string]bool{}
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	want := []string{
		"GET /health",
		"GET /metrics",
		"GET /ws",

		"POST /api/auth/register",
		"POST /api/auth/login",
		"POST /api/auth/logout",
		"GET /api/auth/profile",

		"GET /api/user",
		"GET /api/user/suggested",
		"GET /api/user/followers",
		"PUT /api/user/profile/update",
		"POST /api/user/:targetUser/follow",
		"DELETE /api/user/:targetUser/unfollow",
		"PUT /api/user/:id/like",
		"GET /api/user/:id",

		"GET /api/post",
		"POST /api/post/create",
		"GET /api/post/my-posts",
		"GET /api/post/liked",
		"GET /api/post/user/:id",
		"GET /api/post/user/:id/liked",
		"PUT /api/post/:id",
		"DELETE /api/post/:id",

		"POST /api/comment/:postId",
		"GET /api/comment/:postId",
		"PUT /api/comment/:commentId",
		"DELETE /api/comment/:commentId",

		"POST /api/messages/:receiverId",
		"GET /api/messages/:receiverId",
		"GET /api/messages/chat-users",
		"GET /api/messages/users/chats",

		"GET /api/notifications/get",
		"PUT /api/notifications/:notificationId/read",
		"DELETE /api/notifications/:notificationId",
	}
	for _, route := range want {
		assert.True(t, registered[route], "missing route %s", route)
	}
}

func TestRegisterRoutes_MetricsDisabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Metrics.Enabled = false

	e := echo.New()
	NewRouter(RouterParams{
		Config:              cfg,
		Gatherer:            prometheus.NewRegistry(),
		AuthHandler:         &handler.AuthHandler{},
		UserHandler:         &handler.UserHandler{},
		PostHandler:         &handler.PostHandler{},
		CommentHandler:      &handler.CommentHandler{},
		MessageHandler:      &handler.MessageHandler{},
		NotificationHandler: &handler.NotificationHandler{},
		HealthHandler:       &handler.HealthHandler{},
		RealtimeHandler:     &realtime.Handler{},
		AuthMiddleware:      &middleware.AuthMiddleware{},
		RateLimitMiddleware: &middleware.RateLimitMiddleware{},
	}).RegisterRoutes(e)

	for _, r := range e.Routes() {
		assert.False(t, r.Method == http.MethodGet && r.Path == "/metrics")
	}
}
