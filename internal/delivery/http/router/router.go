// Package router registers every HTTP route of the service.
package router

import (
	"devconnects/config"
	"devconnects/internal/delivery/http/middleware"
	"devconnects/internal/delivery/http/router/handler"
	"devconnects/internal/delivery/realtime"
	"devconnects/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config   *config.Config
	Gatherer prometheus.Gatherer

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	PostHandler         *handler.PostHandler
	CommentHandler      *handler.CommentHandler
	MessageHandler      *handler.MessageHandler
	NotificationHandler *handler.NotificationHandler
	HealthHandler       *handler.HealthHandler
	RealtimeHandler     *realtime.Handler

	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

type router struct {
	params RouterParams
}

func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params
	auth := p.AuthMiddleware.Authenticate

	e.GET("/health", p.HealthHandler.Check)
	if p.Config.Metrics.Enabled {
		e.GET(p.Config.Metrics.Path, echo.WrapHandler(metrics.Handler(p.Gatherer)))
	}

	// The realtime channel authenticates during the handshake itself.
	e.GET(p.Config.Realtime.Path, p.RealtimeHandler.Serve)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", p.AuthHandler.Register)
		authGroup.POST("/login", p.AuthHandler.Login)
		authGroup.POST("/logout", p.AuthHandler.Logout, auth)
		authGroup.GET("/profile", p.AuthHandler.Profile, auth)
	}

	userGroup := api.Group("/user")
	{
		userGroup.GET("", p.UserHandler.ListUsers, auth)
		userGroup.GET("/", p.UserHandler.ListUsers, auth)
		userGroup.GET("/suggested", p.UserHandler.Suggested, auth)
		userGroup.GET("/followers", p.UserHandler.Connections, auth)
		userGroup.PUT("/profile/update", p.UserHandler.UpdateProfile, auth)
		userGroup.POST("/:targetUser/follow", p.UserHandler.Follow, auth)
		userGroup.DELETE("/:targetUser/unfollow", p.UserHandler.Unfollow, auth)
		userGroup.PUT("/:id/like", p.PostHandler.ToggleLike, auth)
		userGroup.GET("/:id", p.UserHandler.GetProfile)
	}

	postGroup := api.Group("/post")
	{
		postGroup.GET("", p.PostHandler.List)
		postGroup.GET("/", p.PostHandler.List)
		postGroup.POST("/create", p.PostHandler.Create, auth)
		postGroup.GET("/my-posts", p.PostHandler.MyPosts, auth)
		postGroup.GET("/liked", p.PostHandler.MyLikes, auth)
		postGroup.GET("/user/:id", p.PostHandler.UserPosts)
		postGroup.GET("/user/:id/liked", p.PostHandler.UserLikes)
		postGroup.PUT("/:id", p.PostHandler.Update, auth)
		postGroup.DELETE("/:id", p.PostHandler.Delete, auth)
	}

	commentGroup := api.Group("/comment")
	{
		commentGroup.POST("/:postId", p.CommentHandler.Create, auth)
		commentGroup.GET("/:postId", p.CommentHandler.List)
		commentGroup.PUT("/:commentId", p.CommentHandler.Update, auth)
		commentGroup.DELETE("/:commentId", p.CommentHandler.Delete, auth)
	}

	messageGroup := api.Group("/messages", auth)
	{
		messageGroup.GET("/chat-users", p.MessageHandler.ChatUsers)
		messageGroup.GET("/users/chats", p.MessageHandler.ChatUsers)
		messageGroup.POST("/:receiverId", p.MessageHandler.Send, p.RateLimitMiddleware.Messages)
		messageGroup.GET("/:receiverId", p.MessageHandler.History)
	}

	notificationGroup := api.Group("/notifications", auth)
	{
		notificationGroup.GET("/get", p.NotificationHandler.List)
		notificationGroup.PUT("/:notificationId/read", p.NotificationHandler.MarkRead)
		notificationGroup.DELETE("/:notificationId", p.NotificationHandler.Delete)
	}
}
