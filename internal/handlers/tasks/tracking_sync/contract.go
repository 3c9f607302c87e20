//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_sync_test
package tracking_sync

import (
	"context"
	"time"

	"storefront/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Tracker interface {
	Sync(ctx context.Context) error
	Evict(idle time.Duration) int
	Len() int
}
