//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=zones_get_test
package zones_get

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

type Service interface {
	GetZones(ctx context.Context, status *entities.ZoneStatusType) ([]entities.DeliveryZone, error)
}
