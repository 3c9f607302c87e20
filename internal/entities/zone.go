package entities

import (
	"time"

	"github.com/govalues/decimal"
)

type GeoPoint struct {
	Lat float64
	Lng float64
}

type DeliveryZone struct {
	ID       string
	BranchID int64
	Name     string
	// Coordinates пары [lat, lng], кольцо замыкается неявно
	Coordinates    [][2]float64
	DeliveryFee    decimal.Decimal
	MinOrderAmount decimal.Decimal
	Status         ZoneStatusType
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ZoneStatusType string

const (
	ZoneActive   ZoneStatusType = "active"
	ZoneInactive ZoneStatusType = "inactive"
)

const DefaultZoneStatus = ZoneActive

func (s ZoneStatusType) String() string {
	return string(s)
}

type ZoneModify struct {
	ID             *string
	Name           *string
	Coordinates    *[][2]float64
	DeliveryFee    *decimal.Decimal
	MinOrderAmount *decimal.Decimal
	Status         *ZoneStatusType
}

// ZoneFilter фильтр выборки зон
type ZoneFilter struct {
	BranchID int64
	Status   *ZoneStatusType
}

type MatchResult struct {
	Valid   bool
	Zone    *DeliveryZone
	Message string
	// Point точка, по которой выполнялась проверка (после геокодинга для адреса)
	Point *GeoPoint
	// Skipped ID зон с вырожденной геометрией (меньше 3 вершин)
	Skipped []string
}
