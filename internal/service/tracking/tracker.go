package tracking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"storefront/internal/entities"
	"storefront/pkg/scheduler"
)

const (
	syncConcurrency = 4

	reseedSourceTrack = "track"
	reseedSourceSync  = "sync"
	reseedSourceEvent = "event"
)

// Tracker держит по одной Progression на каждый отслеживаемый заказ.
type Tracker struct {
	gateway OrderGateway
	clock   scheduler.Scheduler

	mu     sync.Mutex
	orders map[string]*trackedOrder
	closed bool
}

type trackedOrder struct {
	progression *Progression
	lastViewed  time.Time
	subscribers map[uint64]chan entities.OrderStatusType
	nextSubID   uint64
}

func NewTracker(gateway OrderGateway, clock scheduler.Scheduler) *Tracker {
	return &Tracker{
		gateway: gateway,
		clock:   clock,
		orders:  make(map[string]*trackedOrder),
	}
}

// Track получает заказ из order API, пересеивает его прогрессию и возвращает снимок.
// Заказ, который ещё не отслеживался, начинает отслеживаться.
func (t *Tracker) Track(ctx context.Context, orderID string) (*entities.TrackingSnapshot, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	if t.isClosed() {
		return nil, ErrTrackerClosed
	}

	order, err := t.gateway.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}

	entry, err := t.touch(orderID)
	if err != nil {
		return nil, err
	}

	if entry.progression.Reseed(order.Status) {
		TrackingReseedsTotal.WithLabelValues(reseedSourceTrack).Inc()
	}

	snapshot := entry.progression.Snapshot()
	snapshot.OrderID = orderID
	return &snapshot, nil
}

// Reseed применяет статус из события. Неотслеживаемые заказы игнорируются.
func (t *Tracker) Reseed(orderID, status string) bool {
	entry := t.get(orderID)
	if entry == nil {
		return false
	}

	reseeded := entry.progression.Reseed(status)
	if reseeded {
		TrackingReseedsTotal.WithLabelValues(reseedSourceEvent).Inc()
	}
	return reseeded
}

// Snapshot текущее состояние без запроса к order API.
func (t *Tracker) Snapshot(orderID string) (*entities.TrackingSnapshot, error) {
	entry := t.get(orderID)
	if entry == nil {
		return nil, ErrOrderNotTracked
	}

	snapshot := entry.progression.Snapshot()
	snapshot.OrderID = orderID
	return &snapshot, nil
}

// Sync опрашивает order API по всем отслеживаемым заказам и пересеивает их.
// Ошибки по отдельным заказам собираются и не останавливают остальные.
func (t *Tracker) Sync(ctx context.Context) error {
	ids := t.ids()
	if len(ids) == 0 {
		return nil
	}

	var (
		mu   sync.Mutex
		errs []error
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(syncConcurrency)

	for _, id := range ids {
		group.Go(func() error {
			order, err := t.gateway.GetOrderByID(groupCtx, id)
			if err != nil {
				TrackingSyncErrorsTotal.Inc()
				mu.Lock()
				errs = append(errs, fmt.Errorf("sync order %s: %w", id, err))
				mu.Unlock()
				return nil
			}

			entry := t.get(id)
			if entry != nil && entry.progression.Reseed(order.Status) {
				TrackingReseedsTotal.WithLabelValues(reseedSourceSync).Inc()
			}
			return nil
		})
	}

	_ = group.Wait()

	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Subscribe канал смен отображаемого статуса. Буфер на одно значение,
// медленный читатель получает самое свежее. cancel закрывает канал.
func (t *Tracker) Subscribe(orderID string) (<-chan entities.OrderStatusType, func(), error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil, nil, ErrTrackerClosed
	}

	entry, ok := t.orders[orderID]
	if !ok {
		return nil, nil, ErrOrderNotTracked
	}

	id := entry.nextSubID
	entry.nextSubID++
	ch := make(chan entities.OrderStatusType, 1)
	entry.subscribers[id] = ch
	entry.lastViewed = t.clock.Now()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()

			if sub, ok := entry.subscribers[id]; ok {
				delete(entry.subscribers, id)
				entry.lastViewed = t.clock.Now()
				close(sub)
			}
		})
	}

	return ch, cancel, nil
}

// Evict удаляет заказы без подписчиков, которые не смотрели дольше idle,
// и закрывает их прогрессии. Возвращает число удалённых.
func (t *Tracker) Evict(idle time.Duration) int {
	now := t.clock.Now()

	t.mu.Lock()
	var evicted []*Progression
	for id, entry := range t.orders {
		if len(entry.subscribers) > 0 || now.Sub(entry.lastViewed) < idle {
			continue
		}
		delete(t.orders, id)
		evicted = append(evicted, entry.progression)
	}
	TrackedOrders.Set(float64(len(t.orders)))
	t.mu.Unlock()

	for _, progression := range evicted {
		progression.Close()
	}
	return len(evicted)
}

func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.orders)
}

// Close останавливает все прогрессии и закрывает каналы подписчиков.
func (t *Tracker) Close() {
	t.mu.Lock()
	t.closed = true
	progressions := make([]*Progression, 0, len(t.orders))
	for id, entry := range t.orders {
		for subID, sub := range entry.subscribers {
			delete(entry.subscribers, subID)
			close(sub)
		}
		progressions = append(progressions, entry.progression)
		delete(t.orders, id)
	}
	TrackedOrders.Set(0)
	t.mu.Unlock()

	for _, progression := range progressions {
		progression.Close()
	}
}

func (t *Tracker) touch(orderID string) (*trackedOrder, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil, ErrTrackerClosed
	}

	entry, ok := t.orders[orderID]
	if !ok {
		entry = &trackedOrder{
			subscribers: make(map[uint64]chan entities.OrderStatusType),
		}
		entry.progression = NewProgression(t.clock, func(status entities.OrderStatusType) {
			t.broadcast(orderID, status)
		})
		t.orders[orderID] = entry
		TrackedOrders.Set(float64(len(t.orders)))
	}
	entry.lastViewed = t.clock.Now()
	return entry, nil
}

func (t *Tracker) isClosed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

func (t *Tracker) get(orderID string) *trackedOrder {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.orders[orderID]
}

func (t *Tracker) ids() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	ids := make([]string, 0, len(t.orders))
	for id := range t.orders {
		ids = append(ids, id)
	}
	return ids
}

// broadcast вызывается из Progression вне её мьютекса, поэтому брать t.mu здесь безопасно.
func (t *Tracker) broadcast(orderID string, status entities.OrderStatusType) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.orders[orderID]
	if !ok {
		return
	}

	for _, sub := range entry.subscribers {
		select {
		case sub <- status:
		default:
			select {
			case <-sub:
			default:
			}
			select {
			case sub <- status:
			default:
			}
		}
	}
}
