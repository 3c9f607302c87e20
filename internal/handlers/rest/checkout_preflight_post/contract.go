//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=checkout_preflight_post_test
package checkout_preflight_post

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
	Preflight(ctx context.Context, request entities.CheckoutRequest) (*entities.CheckoutQuote, error)
}
