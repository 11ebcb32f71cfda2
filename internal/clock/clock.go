// Package clock provides the wall-clock source the alarm scheduler samples.
//
// System reads the host's local time. Manual is a settable source for tests
// and for replaying scenarios second by second.
package clock

import (
	"sync"
	"time"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// Source supplies the current time. Implementations must be safe for concurrent use.
type Source interface {
	Now() time.Time
}

// Read samples the source once and returns its wall-clock reading.
func Read(src Source) alarm.ClockReading {
	return alarm.ReadingOf(src.Now())
}

// System reads the host clock in the local time zone.
type System struct{}

// Now returns the current local time.
func (System) Now() time.Time {
	return time.Now().Local()
}

// Manual is a clock that only moves when told to.
type Manual struct {
	// now is the current time of the clock.
	now time.Time
	// mu protects now.
	mu sync.RWMutex
}

// NewManual returns a manual clock stopped at start.
func NewManual(start time.Time) *Manual {
	return &Manual{
		now: start,
	}
}

// Now returns the clock's current time.
func (m *Manual) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.now
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.now = t
}

// Advance moves the clock forward by d and returns the new time.
func (m *Manual) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.now = m.now.Add(d)

	return m.now
}
