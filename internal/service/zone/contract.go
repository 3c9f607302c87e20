//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=zone_test
package zone

import (
	"context"

	"storefront/internal/entities"
)

type Repository interface {
	GetZones(ctx context.Context, filter entities.ZoneFilter) ([]entities.DeliveryZone, error)
	GetByID(ctx context.Context, id string) (*entities.DeliveryZone, error)
	Create(ctx context.Context, zone entities.DeliveryZone) (*entities.DeliveryZone, error)
	Update(ctx context.Context, zoneModify entities.ZoneModify) (*entities.DeliveryZone, error)
	Delete(ctx context.Context, id string) error
}

type Geocoder interface {
	Geocode(ctx context.Context, address entities.StructuredAddress) (*entities.GeoPoint, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
