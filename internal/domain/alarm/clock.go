package alarm

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// HoursPerDay bounds valid hour values to [0, HoursPerDay).
	HoursPerDay = 24
	// MinutesPerHour bounds valid minute values to [0, MinutesPerHour).
	MinutesPerHour = 60
	// SecondsPerMinute bounds valid second values to [0, SecondsPerMinute).
	SecondsPerMinute = 60
	// MinutesPerDay is the modulus of minute-of-day arithmetic.
	MinutesPerDay = HoursPerDay * MinutesPerHour
)

// ClockReading is a single wall-clock sample taken once per tick.
type ClockReading struct {
	// Hour is the hour of day in [0, 23].
	Hour int
	// Minute is the minute of hour in [0, 59].
	Minute int
	// Second is the second of minute in [0, 59].
	Second int
}

// ReadingOf converts a timestamp into a wall-clock reading in the timestamp's location.
func ReadingOf(t time.Time) ClockReading {
	return ClockReading{
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// At builds a reading from its parts, mostly for tests and fixtures.
func At(hour, minute, second int) ClockReading {
	return ClockReading{
		Hour:   hour,
		Minute: minute,
		Second: second,
	}
}

// MinuteOfDay returns the number of minutes elapsed since midnight.
func (r ClockReading) MinuteOfDay() int {
	return r.Hour*MinutesPerHour + r.Minute
}

// String renders the reading as HH:MM:SS.
func (r ClockReading) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", r.Hour, r.Minute, r.Second)
}

// Target is the wall-clock hour and minute an alarm is armed for.
type Target struct {
	// Hour is the hour of day in [0, 23].
	Hour int
	// Minute is the minute of hour in [0, 59].
	Minute int
}

// NewTarget validates picker output. A nil hour or minute means the picker had
// no selection and is rejected the same way as an out-of-range value.
func NewTarget(hour, minute *int) (Target, error) {
	if hour == nil || minute == nil {
		return Target{}, fmt.Errorf("hour and minute must be selected: %w", ErrInvalidTarget)
	}

	target := Target{
		Hour:   *hour,
		Minute: *minute,
	}

	if err := target.Validate(); err != nil {
		return Target{}, err
	}

	return target, nil
}

// ParseTarget parses an HH:MM string into a validated target.
func ParseTarget(s string) (Target, error) {
	hour, minute, err := ParseHHMM(s)
	if err != nil {
		return Target{}, fmt.Errorf("%w: %w", ErrInvalidTarget, err)
	}

	return NewTarget(&hour, &minute)
}

// Validate checks that the hour and minute are within range.
func (t Target) Validate() error {
	if t.Hour < 0 || t.Hour >= HoursPerDay {
		return fmt.Errorf("hour %d out of range [0,23]: %w", t.Hour, ErrInvalidTarget)
	}

	if t.Minute < 0 || t.Minute >= MinutesPerHour {
		return fmt.Errorf("minute %d out of range [0,59]: %w", t.Minute, ErrInvalidTarget)
	}

	return nil
}

// MinuteOfDay returns the number of minutes between midnight and the target.
func (t Target) MinuteOfDay() int {
	return t.Hour*MinutesPerHour + t.Minute
}

// Within reports whether the reading falls inside the target minute.
func (t Target) Within(r ClockReading) bool {
	return r.Hour == t.Hour && r.Minute == t.Minute
}

// Next returns the first instant at or after from whose wall clock equals the target minute.
func (t Target) Next(from time.Time) time.Time {
	next := time.Date(from.Year(), from.Month(), from.Day(), t.Hour, t.Minute, 0, 0, from.Location())
	if next.Before(from) {
		next = next.AddDate(0, 0, 1)
	}

	return next
}

// String renders the target as HH:MM.
func (t Target) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseHHMM splits an "H:MM" or "HH:MM" string into integers without range checks.
func ParseHHMM(s string) (int, int, error) {
	hourPart, minutePart, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, 0, fmt.Errorf("expected HH:MM, got %q", s)
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, 0, fmt.Errorf("parse hour %q: %w", hourPart, err)
	}

	minute, err := strconv.Atoi(minutePart)
	if err != nil {
		return 0, 0, fmt.Errorf("parse minute %q: %w", minutePart, err)
	}

	return hour, minute, nil
}
