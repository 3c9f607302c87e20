package tracking

import (
	"strings"
	"time"

	"storefront/internal/entities"
)

type Transition struct {
	Next  entities.OrderStatusType
	Delay time.Duration
}

// Задержки анимации на странице отслеживания, к реальной кухне не привязаны.
var transitions = map[entities.OrderStatusType]Transition{
	entities.OrderPending:        {Next: entities.OrderAccepted, Delay: 40 * time.Second},
	entities.OrderAccepted:       {Next: entities.OrderPreparing, Delay: 60 * time.Second},
	entities.OrderPreparing:      {Next: entities.OrderReady, Delay: 12 * time.Minute},
	entities.OrderReady:          {Next: entities.OrderOutForDelivery, Delay: 2 * time.Minute},
	entities.OrderOutForDelivery: {Next: entities.OrderDelivered, Delay: 20 * time.Minute},
}

var normalization = map[string]entities.OrderStatusType{
	"pending":          entities.OrderPending,
	"accepted":         entities.OrderAccepted,
	"confirmed":        entities.OrderAccepted,
	"preparing":        entities.OrderPreparing,
	"ready":            entities.OrderReady,
	"out_for_delivery": entities.OrderOutForDelivery,
	"delivered":        entities.OrderDelivered,
	"completed":        entities.OrderDelivered,
	"picked_up":        entities.OrderDelivered,
	"cancelled":        entities.OrderCancelled,
	"canceled":         entities.OrderCancelled,
}

// NormalizeStatus переводит статус бэкенда в статус отображения.
// Неизвестные значения становятся pending, чтобы страница не ломалась при новых статусах.
func NormalizeStatus(raw string) entities.OrderStatusType {
	status, ok := normalization[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return entities.OrderPending
	}
	return status
}

// NextTransition false для терминальных статусов.
func NextTransition(status entities.OrderStatusType) (Transition, bool) {
	t, ok := transitions[status]
	return t, ok
}
