package tracking_sync

import (
	"context"
	"time"

	"storefront/pkg/logger"
)

// TrackingSync сверяет отслеживаемые заказы с order API и выгружает заброшенные.
type TrackingSync struct {
	log      handlerLogger
	tracker  Tracker
	interval time.Duration
	idleTTL  time.Duration
}

func NewTrackingSync(log handlerLogger, tracker Tracker, interval, idleTTL time.Duration) *TrackingSync {
	return &TrackingSync{
		log:      log,
		tracker:  tracker,
		interval: interval,
		idleTTL:  idleTTL,
	}
}

func (t *TrackingSync) TTL() time.Duration {
	return t.interval
}

func (t *TrackingSync) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, t.interval)
	defer cancel()

	err := t.tracker.Sync(ctxWithTimeout)

	evicted := t.tracker.Evict(t.idleTTL)
	if evicted > 0 {
		t.log.With(
			logger.NewField("evicted_orders", evicted),
			logger.NewField("tracked_orders", t.tracker.Len()),
		).Info("tracking sync")
	}

	return err
}

func (t *TrackingSync) Info() string {
	return "tracking sync"
}
