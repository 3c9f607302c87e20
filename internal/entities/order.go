package entities

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatusType string

const (
	OrderPending        OrderStatusType = "pending"
	OrderAccepted       OrderStatusType = "accepted"
	OrderPreparing      OrderStatusType = "preparing"
	OrderReady          OrderStatusType = "ready"
	OrderOutForDelivery OrderStatusType = "out_for_delivery"
	OrderDelivered      OrderStatusType = "delivered"
	OrderCancelled      OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// Order заказ в том виде, в котором его отдаёт order API.
// Status сырое значение из словаря бэкенда, без нормализации.
type Order struct {
	ID        string
	Status    string
	OrderType OrderType
	Total     decimal.Decimal
	CreatedAt time.Time
}

type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"
)

type TrackingSnapshot struct {
	OrderID          string
	AuthoritativeRaw string
	Authoritative    OrderStatusType
	Display          OrderStatusType
	SeededAt         time.Time
	NextTransitionAt *time.Time
	Terminal         bool
}
