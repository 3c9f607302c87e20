//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"storefront/internal/entities"
)

type OrderGateway interface {
	GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error)
}
