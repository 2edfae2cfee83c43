// Package mongo contains the concrete implementation of the persistence layer using the MongoDB driver.
package mongo

import (
	"context"
	"log/slog"
	"time"

	"devconnects/config"
	"devconnects/internal/domain/lifecycle"
	"devconnects/internal/errors"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client. The connection is verified and indexes are ensured on start.
func New(params Params) (*mongo.Client, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo.uri must be provided")
	}

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetMinPoolSize(cfg.MinPoolSize).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetTimeout(cfg.OperationTimeout).
		SetPoolMonitor(newPoolMonitor(params.Logger))
	if cfg.AppName != "" {
		clientOptions.SetAppName(cfg.AppName)
	}
	if cfg.MaxPoolSize > 0 {
		clientOptions.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	client, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			return EnsureIndexes(ctx, client.Database(cfg.Database))
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return client.Disconnect(ctx)
		},
	})

	return client, nil
}

// NewDatabase selects the configured database.
func NewDatabase(client *mongo.Client, cfg *config.Config) *mongo.Database {
	return client.Database(cfg.Mongo.Database)
}

func newPoolMonitor(logger *slog.Logger) *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(evt *event.PoolEvent) {
			if logger == nil {
				return
			}

			switch evt.Type {
			case event.ConnectionCreated, event.ConnectionClosed:
				logger.Debug("MongoDB pool event",
					slog.String("type", evt.Type),
					slog.String("address", evt.Address),
					slog.Uint64("connectionId", evt.ConnectionID),
				)
			case event.GetFailed:
				logger.Warn("MongoDB connection checkout failed",
					slog.String("address", evt.Address),
					slog.String("reason", evt.Reason),
					slog.Duration("waited", evt.Duration),
				)
			case event.PoolCleared:
				logger.Warn("MongoDB pool cleared", slog.String("address", evt.Address))
			}
		},
	}
}

// timestamp is the current time at the precision MongoDB stores.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
