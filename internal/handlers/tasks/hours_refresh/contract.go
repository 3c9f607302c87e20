//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=hours_refresh_test
package hours_refresh

import (
	"context"

	"storefront/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Refresh(ctx context.Context) error
	Display() string
}
