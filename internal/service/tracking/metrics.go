package tracking

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TrackedOrders = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracking_orders",
			Help: "Number of orders currently tracked",
		},
	)

	TrackingReseedsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracking_reseeds_total",
			Help: "Total number of progression reseeds from authoritative status",
		},
		[]string{"source"},
	)

	TrackingSyncErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tracking_sync_errors_total",
			Help: "Total number of failed per-order status polls",
		},
	)
)
