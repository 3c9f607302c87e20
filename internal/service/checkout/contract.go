//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=checkout_test
package checkout

import (
	"context"
	"time"

	"github.com/govalues/decimal"
	"storefront/internal/entities"
)

type HoursService interface {
	Status(at time.Time) entities.OpenStatus
}

type ZoneService interface {
	ValidateLocation(ctx context.Context, point entities.GeoPoint) (*entities.MatchResult, error)
	ValidateAddress(ctx context.Context, address entities.StructuredAddress) (*entities.MatchResult, error)
}

type CouponGateway interface {
	ValidateCoupon(ctx context.Context, code string, subtotal decimal.Decimal) (*entities.CouponDiscount, error)
}

type Clock interface {
	Now() time.Time
}
