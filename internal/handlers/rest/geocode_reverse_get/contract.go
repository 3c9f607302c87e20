//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=geocode_reverse_get_test
package geocode_reverse_get

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

type Geocoder interface {
	ReverseGeocode(ctx context.Context, point entities.GeoPoint) (*entities.StructuredAddress, error)
}
