package tracking

import (
	"sync"
	"time"

	"storefront/internal/entities"
	"storefront/pkg/scheduler"
)

// Progression машина состояний для отображаемого статуса заказа.
//
// После Reseed статус сам продвигается по таблице переходов. В любой момент
// запланирован не больше одного таймера; таймер, пережив Reseed или Close,
// отсекается по номеру поколения.
type Progression struct {
	clock    scheduler.Scheduler
	onChange func(entities.OrderStatusType)

	// notifyMu упорядочивает вызовы onChange; notified последний отданный статус.
	notifyMu sync.Mutex
	notified entities.OrderStatusType

	mu         sync.Mutex
	seeded     bool
	closed     bool
	seedRaw    string
	seed       entities.OrderStatusType
	display    entities.OrderStatusType
	seededAt   time.Time
	nextAt     time.Time
	timer      scheduler.Timer
	generation uint64
}

// NewProgression onChange вызывается вне p.mu при каждой смене отображаемого статуса, может быть nil.
// Вызовы не пересекаются, последним всегда приходит актуальный статус.
func NewProgression(clock scheduler.Scheduler, onChange func(entities.OrderStatusType)) *Progression {
	return &Progression{
		clock:    clock,
		onChange: onChange,
		display:  entities.OrderPending,
		seed:     entities.OrderPending,
	}
}

// Reseed сбрасывает машину на авторитетный статус и планирует следующий переход.
// Повторный Reseed тем же нормализованным статусом ничего не делает, иначе
// частый опрос бэкенда не дал бы анимации продвинуться. Возвращает true, если машина пересеяна.
func (p *Progression) Reseed(raw string) bool {
	status := NormalizeStatus(raw)

	p.mu.Lock()
	if p.closed || (p.seeded && status == p.seed) {
		p.mu.Unlock()
		return false
	}

	p.stopLocked()

	p.seeded = true
	p.seedRaw = raw
	p.seed = status
	p.display = status
	p.seededAt = p.clock.Now()
	p.scheduleLocked()
	p.mu.Unlock()

	p.publish()
	return true
}

func (p *Progression) Status() entities.OrderStatusType {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.display
}

func (p *Progression) Snapshot() entities.TrackingSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snapshot := entities.TrackingSnapshot{
		AuthoritativeRaw: p.seedRaw,
		Authoritative:    p.seed,
		Display:          p.display,
		SeededAt:         p.seededAt,
		Terminal:         p.display.IsTerminal(),
	}
	if p.timer != nil {
		nextAt := p.nextAt
		snapshot.NextTransitionAt = &nextAt
	}
	return snapshot
}

// Close отменяет ожидающий таймер, после него колбэки не вызываются.
func (p *Progression) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	p.stopLocked()
}

func (p *Progression) advance(generation uint64) {
	p.mu.Lock()
	if p.closed || generation != p.generation {
		p.mu.Unlock()
		return
	}

	transition, ok := NextTransition(p.display)
	if !ok {
		p.timer = nil
		p.mu.Unlock()
		return
	}

	p.timer = nil
	p.generation++
	p.display = transition.Next
	p.scheduleLocked()
	p.mu.Unlock()

	p.publish()
}

func (p *Progression) scheduleLocked() {
	transition, ok := NextTransition(p.display)
	if !ok {
		return
	}

	generation := p.generation
	p.nextAt = p.clock.Now().Add(transition.Delay)
	p.timer = p.clock.AfterFunc(transition.Delay, func() {
		p.advance(generation)
	})
}

func (p *Progression) stopLocked() {
	p.generation++
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

// publish отдаёт в onChange текущий статус, а не тот, что был при смене:
// если Reseed и таймер сработали одновременно, опоздавший вызов увидит уже свежее значение.
func (p *Progression) publish() {
	if p.onChange == nil {
		return
	}

	p.notifyMu.Lock()
	defer p.notifyMu.Unlock()

	p.mu.Lock()
	status := p.display
	skip := p.closed || status == p.notified
	p.mu.Unlock()

	if skip {
		return
	}
	p.notified = status
	p.onChange(status)
}
