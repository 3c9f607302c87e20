package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type (
	ShouldRetryFunc func(error) bool
	NotifyFunc      func(err error, wait time.Duration)
)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// nil retries every error, otherwise only errors the func accepts
	ShouldRetry ShouldRetryFunc
	// called before each sleep, optional
	OnRetry NotifyFunc
}

// Startup is the policy for dependencies pinged while the service boots
// (database, cache, broker): slow, long-lived, every error retried.
func Startup() Config {
	return Config{
		InitialInterval: time.Second,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
		Randomization:   0.5,
		Multiplier:      2,
	}
}

// Request is the policy for a single outbound call made on behalf of a client request.
func Request(shouldRetry ShouldRetryFunc) Config {
	return Config{
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     500 * time.Millisecond,
		MaxElapsedTime:  time.Second,
		Randomization:   0.5,
		Multiplier:      2,
		ShouldRetry:     shouldRetry,
	}
}
