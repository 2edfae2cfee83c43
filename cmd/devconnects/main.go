package main

import (
	"context"
	"log/slog"
	"os"

	"devconnects/config"
	"devconnects/internal/delivery"
	"devconnects/internal/delivery/http"
	"devconnects/internal/delivery/http/middleware"
	"devconnects/internal/delivery/http/router/handler"
	"devconnects/internal/delivery/realtime"
	"devconnects/internal/infra/auth"
	logs "devconnects/internal/infra/log"
	"devconnects/internal/infra/metrics"
	"devconnects/internal/infra/persistence/mongo"
	"devconnects/internal/infra/presence"
	"devconnects/internal/infra/ratelimit"
	"devconnects/internal/infra/sanitize"
	"devconnects/internal/usecase/impl"

	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
		}),
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectRealtime(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			mongo.New,
			mongo.NewDatabase,
			func(client *mongodriver.Client) handler.Pinger { return client },
		),
		metrics.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongo.NewUserRepository,
			mongo.NewMessageRepository,
			mongo.NewNotificationRepository,
			mongo.NewPostRepository,
			mongo.NewCommentRepository,
			mongo.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			presence.NewRegistry,
			presence.NewPresenceRegistry,
			sanitize.NewTextSanitizer,
			ratelimit.NewLimiters,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewMessageService,
			impl.NewNotificationService,
			impl.NewPostService,
			impl.NewCommentService,
		),
	)
}

// injectRealtime provides the hub both as the websocket endpoint's owner and as the usecases' pusher.
func injectRealtime() fx.Option {
	return fx.Options(
		fx.Provide(
			realtime.NewHub,
			realtime.NewRealtimePusher,
			realtime.NewHandler,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewPostHandler,
			handler.NewCommentHandler,
			handler.NewMessageHandler,
			handler.NewNotificationHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
