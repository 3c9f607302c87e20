package app

import (
	"storefront/internal/handlers/kafka-consumer/order_status_changed"
	"storefront/internal/handlers/rest/checkout_preflight_post"
	"storefront/internal/handlers/rest/coupon_validate_post"
	"storefront/internal/handlers/rest/delivery_validate_post"
	"storefront/internal/handlers/rest/geocode_get"
	"storefront/internal/handlers/rest/geocode_reverse_get"
	"storefront/internal/handlers/rest/hours_get"
	"storefront/internal/handlers/rest/order_tracking_get"
	"storefront/internal/handlers/rest/order_tracking_ws"
	"storefront/internal/handlers/rest/zone_delete"
	"storefront/internal/handlers/rest/zone_post"
	"storefront/internal/handlers/rest/zone_put"
	"storefront/internal/handlers/rest/zones_get"
	"storefront/pkg/background"
	"storefront/pkg/scheduler"
)

type Application struct {
	ServiceZone       ServiceZone
	ServiceHours      ServiceHours
	ServiceCheckout   ServiceCheckout
	ServiceTracker    ServiceTracker
	ServiceGeocoder   ServiceGeocoder
	Clock             scheduler.Scheduler
	BackgroundWorkers *background.Worker
}

type ServiceZone interface {
	delivery_validate_post.Service
	zones_get.Service
	zone_post.Service
	zone_put.Service
	zone_delete.Service
}

type ServiceHours interface {
	hours_get.Service
}

type ServiceCheckout interface {
	checkout_preflight_post.Service
	coupon_validate_post.Service
}

type ServiceTracker interface {
	order_tracking_get.Tracker
	order_tracking_ws.Tracker
	order_status_changed.Tracker
	Close()
}

type ServiceGeocoder interface {
	geocode_get.Geocoder
	geocode_reverse_get.Geocoder
}
