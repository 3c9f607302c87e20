//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=nominatim_test
package nominatim

import (
	"context"
	"time"

	"storefront/internal/entities"
	"storefront/pkg/logger"
)

type Cache interface {
	// Get nil, nil при промахе
	Get(ctx context.Context, key string) (*entities.GeoPoint, error)
	Set(ctx context.Context, key string, point entities.GeoPoint, ttl time.Duration) error
}

type Limiter interface {
	Wait(ctx context.Context) error
}

type gatewayLogger interface {
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
