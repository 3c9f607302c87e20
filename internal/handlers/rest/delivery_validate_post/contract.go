//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_validate_post_test
package delivery_validate_post

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
	ValidateLocation(ctx context.Context, point entities.GeoPoint) (*entities.MatchResult, error)
	ValidateAddress(ctx context.Context, address entities.StructuredAddress) (*entities.MatchResult, error)
}
