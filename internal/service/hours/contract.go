//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=hours_test
package hours

import (
	"context"

	"storefront/internal/entities"
)

type Repository interface {
	GetOperatingHours(ctx context.Context, branchID int64) (*entities.WeeklyOperatingHours, error)
}
