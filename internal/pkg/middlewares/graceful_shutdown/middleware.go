package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

// Middleware после начала остановки отвечает 503 на новые запросы,
// чтобы балансировщик успел вывести инстанс.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() || ongoingCtx.Err() != nil {
				w.Header().Set("Connection", "close")
				w.Header().Set("Retry-After", "5")
				http.Error(w, "Service is shutting down", http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
