package scheduler

import (
	"sort"
	"sync"
	"time"
)

// Timer отложенный вызов, который можно отменить.
type Timer interface {
	// Stop отменяет вызов; false, если он уже выполнен или отменён.
	Stop() bool
}

// Scheduler источник времени и отложенных вызовов.
// В проде System, в тестах Manual, чтобы не ждать реальные минуты.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

type System struct{}

func NewSystem() System {
	return System{}
}

func (System) Now() time.Time {
	return time.Now()
}

func (System) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Manual ручные часы: время двигается только через Advance.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	owner *Manual
	at    time.Time
	seq   uint64
	fn    func()
	done  bool
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTimer{
		owner: m,
		at:    m.now.Add(d),
		seq:   m.seq,
		fn:    fn,
	}
	m.timers = append(m.timers, t)
	return t
}

// Advance сдвигает часы на d и по порядку выполняет все наступившие вызовы.
// Колбэки вызываются без удержания мьютекса, поэтому могут планировать новые таймеры,
// и те тоже сработают, если попадают в окно.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.popDueLocked(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = next.at
		m.mu.Unlock()

		next.fn()
	}
}

// Pending количество ещё не сработавших таймеров.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

func (m *Manual) popDueLocked(target time.Time) *manualTimer {
	if len(m.timers) == 0 {
		return nil
	}

	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].at.Equal(m.timers[j].at) {
			return m.timers[i].seq < m.timers[j].seq
		}
		return m.timers[i].at.Before(m.timers[j].at)
	})

	first := m.timers[0]
	if first.at.After(target) {
		return nil
	}

	m.timers = m.timers[1:]
	first.done = true
	return first
}

func (t *manualTimer) Stop() bool {
	m := t.owner
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true

	for i, candidate := range m.timers {
		if candidate == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			break
		}
	}
	return true
}
