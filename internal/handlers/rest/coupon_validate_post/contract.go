//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=coupon_validate_post_test
package coupon_validate_post

import (
	"context"

	"github.com/govalues/decimal"
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
	ValidateCoupon(ctx context.Context, code string, subtotal decimal.Decimal) (*entities.CouponDiscount, error)
}
