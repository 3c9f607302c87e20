// Package integration_test общая обвязка интеграционных тестов репозиториев
// (запуск: go test -tags integration ./internal/repository/...).
package integration_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/postgres"
	"storefront/pkg/logger/zap_adapter"
	"storefront/pkg/querier"
)

const truncateSQL = `TRUNCATE TABLE delivery_zones, branches RESTART IDENTITY CASCADE;`

var (
	querierOnce     sync.Once
	querierInstance *querier.Querier
	querierErr      error
)

// SetupDB накатывает миграции (один раз на пакет), выполняет setupSQL и
// очищает таблицы по завершении теста. Без POSTGRES_HOST тест пропускается.
func SetupDB(t *testing.T, setupSQL string) *querier.Querier {
	t.Helper()

	q := getQuerier(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := q.Exec(ctx, setupSQL)
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		_, err := q.Exec(ctx, truncateSQL)
		require.NoError(t, err)
	})

	return q
}

func getQuerier(t *testing.T) *querier.Querier {
	t.Helper()

	// переменные окружения подставляет Makefile из .env.test
	cfg := &config.Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
	if cfg.Host == "" {
		t.Skip("POSTGRES_HOST is not set")
	}

	querierOnce.Do(func() {
		ctx := context.Background()
		log := zap_adapter.NewNop()

		pool, err := postgres.NewConnPool(ctx, log, cfg)
		if err != nil {
			querierErr = err
			return
		}

		if err := postgres.Migrate(ctx, log, pool); err != nil {
			querierErr = err
			return
		}

		querierInstance = querier.New(pool, pgxv5.DefaultCtxGetter)
	})
	require.NoError(t, querierErr)

	return querierInstance
}
