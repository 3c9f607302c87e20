package hours_refresh

import (
	"context"
	"time"

	"storefront/pkg/logger"
)

type HoursRefresh struct {
	log      handlerLogger
	service  Service
	interval time.Duration
	display  string
}

func NewHoursRefresh(log handlerLogger, service Service, interval time.Duration) *HoursRefresh {
	return &HoursRefresh{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (h *HoursRefresh) TTL() time.Duration {
	return h.interval
}

// Do перечитывает расписание филиала; смена отображаемых часов пишется в лог.
func (h *HoursRefresh) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, h.interval)
	defer cancel()

	err := h.service.Refresh(ctxWithTimeout)
	if err != nil {
		return err
	}

	display := h.service.Display()
	if display != h.display {
		h.log.With(
			logger.NewField("previous", h.display),
			logger.NewField("current", display),
		).Info("operating hours changed")
		h.display = display
	}

	return nil
}

func (h *HoursRefresh) Info() string {
	return "hours refresh"
}
