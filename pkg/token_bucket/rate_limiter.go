package token_bucket

import (
	"context"
	"sync"
	"time"
)

/*
Allow не блокирует: входящий запрос либо принимается, либо отклоняется.
Wait блокируется до появления токена, это для исходящих запросов,
где лимит провайдера превышать нельзя (Nominatim: 1 rps).
Токены копятся дробно, поэтому скорость 0.5/сек даёт ровно один токен за 2 секунды.
*/

type Limiter interface {
	Allow() bool
}

type Waiter interface {
	Wait(ctx context.Context) error
}

type TokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        func() time.Time
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return NewTokenBucketWithClock(capacity, refillRate, time.Now)
}

// NewTokenBucketWithClock то же, что NewTokenBucket, но время берётся из now.
func NewTokenBucketWithClock(capacity int, refillRate float64, now func() time.Time) *TokenBucket {
	if capacity < 0 {
		capacity = 0
	}
	if refillRate < 0 {
		refillRate = 0
	}
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: now(),
		now:        now,
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

// Tokens количество целых токенов на текущий момент.
func (t *TokenBucket) Tokens() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()
	return int(t.tokens)
}

// Wait ждёт свободный токен. При нулевой скорости пополнения выходит только по отмене ctx.
func (t *TokenBucket) Wait(ctx context.Context) error {
	for {
		if t.Allow() {
			return nil
		}

		timer := time.NewTimer(t.nextTokenIn())
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (t *TokenBucket) nextTokenIn() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.refillRate <= 0 || t.capacity < 1 {
		return time.Second
	}

	missing := 1 - t.tokens
	wait := time.Duration(missing / t.refillRate * float64(time.Second))
	if wait < time.Millisecond {
		wait = time.Millisecond
	}
	return wait
}

func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}
	t.lastRefill = now

	t.tokens += elapsed * t.refillRate
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
}
