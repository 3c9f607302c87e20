package postgres

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"storefront/internal/pkg/config"
	"storefront/pkg/logger"
	retrierconfig "storefront/pkg/retrier"
	"storefront/pkg/retrier/backoff_adapter"
)

// нагрузка в основном на чтение зон и расписания, пул небольшой
const (
	maxConns          = 8
	minConns          = 1
	maxConnLifetime   = time.Hour
	maxConnIdleTime   = 15 * time.Minute
	healthCheckPeriod = time.Minute
	applicationName   = "storefront"
)

func NewConnPool(ctx context.Context, log logger.Logger, cfg *config.Database) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	poolCfg.MaxConns = maxConns
	poolCfg.MinConns = minConns
	poolCfg.MaxConnLifetime = maxConnLifetime
	poolCfg.MaxConnIdleTime = maxConnIdleTime
	poolCfg.HealthCheckPeriod = healthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connection pool: %w", err)
	}

	dbLog := log.With(
		logger.NewField("host", cfg.Host),
		logger.NewField("port", cfg.Port),
		logger.NewField("db", cfg.DBName),
	)

	if err := pingDatabase(ctx, dbLog, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database connection: %w", err)
	}

	return pool, nil
}

// DSN строит postgres URL. Логин и пароль экранируются, пустой SSLMode не передаётся.
func DSN(cfg *config.Database) string {
	query := url.Values{}
	query.Set("application_name", applicationName)
	if cfg.SSLMode != "" {
		query.Set("sslmode", cfg.SSLMode)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Path:     "/" + cfg.DBName,
		RawQuery: query.Encode(),
	}
	return dsn.String()
}

func pingDatabase(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	retrier := backoff_adapter.New(retrierconfig.Startup())

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.Info("attempting Database connection", logger.NewField("attempt", attempt))
		return pool.Ping(ctx)
	})
	if err != nil {
		log.Error("Database connection failed after retries",
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		)
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("Database connection established", logger.NewField("attempts", attempt))
	return nil
}
