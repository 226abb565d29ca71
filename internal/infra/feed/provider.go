package feed

import (
	"context"
	"log/slog"

	"loyalty/config"
	"loyalty/internal/domain/lifecycle"
	"loyalty/internal/domain/service"
	"loyalty/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for ChangeFeed, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewChangeFeed creates a Redis backed feed, or an in-process one when Redis is not configured.
func NewChangeFeed(params Params) service.ChangeFeed {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, using in-process change feed")

		return NewMemoryFeed(params.Logger)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	params.Logger.Info("Using Redis change feed", slog.String("addr", cfg.Addr))

	return NewRedisFeed(client, cfg.ChannelPrefix, params.Logger)
}
