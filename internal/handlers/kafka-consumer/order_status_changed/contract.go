//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_status_changed_test
package order_status_changed

import (
	"storefront/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Tracker interface {
	Reseed(orderID, status string) bool
}
