package rotation

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestNextIndex(t *testing.T) {
	tests := []struct {
		name    string
		current int
		count   int
		want    int
	}{
		{"empty never advances", 0, 0, 0},
		{"single item never advances", 0, 1, 0},
		{"advances", 0, 3, 1},
		{"wraps", 2, 3, 0},
		{"out of range resets", 7, 3, 0},
		{"negative resets", -1, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextIndex(tt.current, tt.count); got != tt.want {
				t.Errorf("NextIndex(%d, %d) = %d, want %d", tt.current, tt.count, got, tt.want)
			}
		})
	}
}

func TestRotatorEmitsTransitionThenIdle(t *testing.T) {
	var mu sync.Mutex
	var steps []Step
	done := make(chan struct{})

	r := New(30*time.Millisecond, 5*time.Millisecond, 3, func(s Step) {
		mu.Lock()
		steps = append(steps, s)
		if len(steps) == 2 {
			close(done)
		}
		mu.Unlock()
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("rotator never completed a full advance")
	}
	cancel()

	mu.Lock()
	defer mu.Unlock()
	if steps[0].State != StateTransitioning {
		t.Errorf("first step state = %q, want %q", steps[0].State, StateTransitioning)
	}
	if steps[1].State != StateIdle {
		t.Errorf("second step state = %q, want %q", steps[1].State, StateIdle)
	}
	if steps[0].From != 0 || steps[0].To != 1 {
		t.Errorf("first advance = %d->%d, want 0->1", steps[0].From, steps[0].To)
	}
	if got := r.Current(); got != 1 {
		t.Errorf("Current() after one advance = %d, want 1", got)
	}
}

func TestRotatorStopsOnCancel(t *testing.T) {
	r := New(10*time.Millisecond, 2*time.Millisecond, 2, func(Step) {})
	ctx, cancel := context.WithCancel(context.Background())

	finished := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(finished)
	}()

	cancel()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRotatorSingleItemNeverAdvances(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	r := New(10*time.Millisecond, 2*time.Millisecond, 1, func(Step) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	r.Run(ctx)

	mu.Lock()
	defer mu.Unlock()
	if calls != 0 {
		t.Errorf("rotator with one item emitted %d steps, want 0", calls)
	}
}

func TestSetCountResetsOutOfRangeIndex(t *testing.T) {
	r := New(time.Second, 100*time.Millisecond, 5, func(Step) {})
	r.mu.Lock()
	r.current = 4
	r.mu.Unlock()

	r.SetCount(3)
	if got := r.Current(); got != 0 {
		t.Errorf("Current() after shrink = %d, want 0", got)
	}
}
