package scheduler

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is one reading per wall-clock second.
const DefaultInterval = time.Second

// TickFunc evaluates one tick. The context is cancelled once the loop that
// invoked it has been stopped or replaced; callbacks must check it before
// mutating shared state. Returning false ends the loop.
type TickFunc func(ctx context.Context) bool

// Loop runs a TickFunc at a fixed cadence.
type Loop struct {
	// tick is invoked once per interval.
	tick TickFunc
	// interval is the tick cadence.
	interval time.Duration

	// mu protects cancel and done.
	mu sync.Mutex
	// cancel stops the current run, nil when idle.
	cancel context.CancelFunc
	// done is closed when the current run's goroutine exits.
	done chan struct{}
}

// Option configures a Loop.
type Option func(*Loop)

// WithInterval overrides the tick cadence.
func WithInterval(interval time.Duration) Option {
	return func(l *Loop) {
		if interval > 0 {
			l.interval = interval
		}
	}
}

// New creates a stopped loop.
func New(tick TickFunc, opts ...Option) *Loop {
	l := &Loop{
		tick:     tick,
		interval: DefaultInterval,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Start begins invoking the tick callback every interval. A schedule that is
// already running is cancelled first, so there is never more than one cadence.
// Start does not wait for the replaced goroutine to exit.
func (l *Loop) Start(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stopLocked()

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	l.cancel = cancel
	l.done = done

	go l.run(runCtx, done)
}

// Stop halts the schedule. It is a no-op when the loop is not running and
// never interrupts a tick that is already in progress.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stopLocked()
}

// Running reports whether a schedule is active.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.done == nil {
		return false
	}

	select {
	case <-l.done:
		return false
	default:
		return true
	}
}

// Wait blocks until the most recent schedule's goroutine has exited.
// It must not be called from inside a tick.
func (l *Loop) Wait() {
	l.mu.Lock()
	done := l.done
	l.mu.Unlock()

	if done != nil {
		<-done
	}
}

func (l *Loop) stopLocked() {
	if l.cancel == nil {
		return
	}

	l.cancel()
	l.cancel = nil
}

func (l *Loop) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// The ticker and the cancellation may be ready together.
			if ctx.Err() != nil {
				return
			}

			if !l.tick(ctx) {
				return
			}
		}
	}
}
