package redisclient

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"storefront/internal/pkg/config"
	"storefront/pkg/logger"
	retrierconfig "storefront/pkg/retrier"
	"storefront/pkg/retrier/backoff_adapter"
)

func New(ctx context.Context, log logger.Logger, cfg *config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	redisLog := log.With(
		logger.NewField("addr", cfg.Addr),
		logger.NewField("db", cfg.DB),
	)

	if err := ping(ctx, redisLog, client); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection: %w", err)
	}

	return client, nil
}

func ping(ctx context.Context, log logger.Logger, client *redis.Client) error {
	retrier := backoff_adapter.New(retrierconfig.Startup())

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting Redis connection")

		return client.Ping(ctx).Err()
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("Redis connection failed after retries")
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("Redis connection established")
	return nil
}
