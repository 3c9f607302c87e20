package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"storefront/pkg/logger"
)

const pingTimeout = time.Second

type Handler struct {
	log            handlerLogger
	isShuttingDown *atomic.Bool
	db             Pinger
}

// New db может быть nil, тогда проверяется только остановка сервиса.
func New(log handlerLogger, isShuttingDown *atomic.Bool, db Pinger) *Handler {
	return &Handler{
		log:            log.With(logger.NewField("handler", "healthcheck_head")),
		isShuttingDown: isShuttingDown,
		db:             db,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			h.log.Warn("readiness: database ping failed", logger.NewField("error", err))
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
