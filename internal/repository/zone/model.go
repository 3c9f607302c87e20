package zone

import "time"

// ZoneDB суммы читаются как text (delivery_fee::text), чтобы не терять точность numeric.
type ZoneDB struct {
	ID             string
	BranchID       int64
	Name           string
	Coordinates    []byte
	DeliveryFee    string
	MinOrderAmount string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ZoneModifyDB struct {
	ID             *string
	Name           *string
	Coordinates    []byte
	DeliveryFee    *string
	MinOrderAmount *string
	Status         *string
}
