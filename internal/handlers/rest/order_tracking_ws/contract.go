//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_tracking_ws_test
package order_tracking_ws

import (
	"context"

	"storefront/internal/entities"
	"storefront/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Tracker interface {
	Track(ctx context.Context, orderID string) (*entities.TrackingSnapshot, error)
	Subscribe(orderID string) (<-chan entities.OrderStatusType, func(), error)
	Snapshot(orderID string) (*entities.TrackingSnapshot, error)
}
