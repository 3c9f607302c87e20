package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"storefront/pkg/retrier"
)

// StatusError ответ с неуспешным HTTP кодом.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// IsRetryable 429 и 5xx прокси, плюс таймауты транспорта.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.Code {
		case http.StatusTooManyRequests,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	}

	if errors.Is(err, context.Canceled) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}

// Code метка для метрик.
func Code(err error) string {
	if err == nil {
		return "OK"
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.Code)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "TIMEOUT"
	}
	return "UNKNOWN"
}

// ExecuteWithMetrics latency metric -> attempts metric -> retrier -> fn
func ExecuteWithMetrics(ctx context.Context, r retrier.Retrier, service, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := r.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := Code(err)
	GatewayRequestDuration.WithLabelValues(service, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(service, method, code).Inc()
	}

	return err
}
