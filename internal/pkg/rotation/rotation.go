// Package rotation provides the shared timer state machine used by every
// cycling block (paginated lists, carousels, news tickers). A Rotator is
// acquired for one block, driven by a context, and releases its timers when
// that context is cancelled, so rotation can never outlive its block.
package rotation

import (
	"context"
	"sync"
	"time"
)

// State of a rotator between ticks.
type State string

const (
	StateIdle          State = "idle"
	StateTransitioning State = "transitioning"
)

// Step describes one advance: the rotator leaves From, spends the
// transition window in StateTransitioning, then settles on To.
type Step struct {
	From  int
	To    int
	State State
}

// NextIndex advances a cyclic index. Count of zero or one never advances.
func NextIndex(current, count int) int {
	if count <= 1 {
		return 0
	}
	if current < 0 || current >= count {
		return 0
	}
	return (current + 1) % count
}

// Rotator cycles an index through [0, count) on a fixed interval, emitting
// a transitioning step and then an idle step for each advance.
type Rotator struct {
	interval   time.Duration
	transition time.Duration
	emit       func(Step)

	mu      sync.Mutex
	count   int
	current int
	state   State
}

// New builds a rotator. The transition duration must be shorter than the
// interval; it is clamped to half the interval otherwise. The emit callback
// runs on the rotator's goroutine and must not block.
func New(interval, transition time.Duration, count int, emit func(Step)) *Rotator {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if transition <= 0 || transition >= interval {
		transition = interval / 2
	}
	return &Rotator{
		interval:   interval,
		transition: transition,
		emit:       emit,
		count:      count,
		state:      StateIdle,
	}
}

// Current returns the settled index.
func (r *Rotator) Current() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// SetCount updates the cycle length when the underlying data changes. The
// current index is reset if it falls out of range.
func (r *Rotator) SetCount(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count = count
	if r.current >= count {
		r.current = 0
	}
}

// Run drives the rotator until ctx is cancelled. It blocks; callers start
// it on its own goroutine.
func (r *Rotator) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.advance(ctx)
		}
	}
}

func (r *Rotator) advance(ctx context.Context) {
	r.mu.Lock()
	if r.count <= 1 {
		r.mu.Unlock()
		return
	}
	from := r.current
	to := NextIndex(from, r.count)
	r.state = StateTransitioning
	r.mu.Unlock()

	r.emit(Step{From: from, To: to, State: StateTransitioning})

	select {
	case <-ctx.Done():
		return
	case <-time.After(r.transition):
	}

	r.mu.Lock()
	r.current = to
	r.state = StateIdle
	r.mu.Unlock()

	r.emit(Step{From: from, To: to, State: StateIdle})
}
