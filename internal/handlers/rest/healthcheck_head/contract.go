package healthcheck_head

import (
	"context"

	"storefront/pkg/logger"
)

//go:generate mockgen -source=contract.go -destination=contract_mocks_test.go -package=healthcheck_head_test

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Pinger хранилище, без которого сервис не готов принимать трафик (пул Postgres).
type Pinger interface {
	Ping(ctx context.Context) error
}
