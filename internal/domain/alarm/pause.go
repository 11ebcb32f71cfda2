package alarm

import (
	"fmt"
	"strings"
)

// PauseKind selects which variant of a PauseSpec is active.
type PauseKind int

const (
	// PauseNone disables the pause window.
	PauseNone PauseKind = iota
	// PauseDuration suppresses dispatch for a relative span after the reference start.
	PauseDuration
	// PauseAbsoluteEnd suppresses dispatch until a wall-clock end time.
	PauseAbsoluteEnd
)

// String returns the configuration name of the kind.
func (k PauseKind) String() string {
	switch k {
	case PauseNone:
		return "none"
	case PauseDuration:
		return "duration"
	case PauseAbsoluteEnd:
		return "until"
	default:
		return "unknown"
	}
}

// Span is the relative length of a duration pause.
type Span struct {
	// Hours is the whole-hour part of the span, zero or more.
	Hours int
	// Minutes is the minute part of the span in [0, 59].
	Minutes int
}

// TotalMinutes returns the span length in minutes.
func (s Span) TotalMinutes() int {
	return s.Hours*MinutesPerHour + s.Minutes
}

// String renders the span as HH:MM.
func (s Span) String() string {
	return fmt.Sprintf("%02d:%02d", s.Hours, s.Minutes)
}

// PauseSpec describes a window during which a matched alarm is not dispatched.
// Exactly one variant is active; the fields of the inactive variant are never read.
type PauseSpec struct {
	// Kind selects the active variant.
	Kind PauseKind
	// Duration is consulted only when Kind is PauseDuration.
	Duration Span
	// End is consulted only when Kind is PauseAbsoluteEnd.
	End Target
}

// NoPause returns a spec with the pause window disabled.
func NoPause() PauseSpec {
	return PauseSpec{Kind: PauseNone}
}

// PauseFor returns a duration-based pause spec.
func PauseFor(hours, minutes int) PauseSpec {
	return PauseSpec{
		Kind: PauseDuration,
		Duration: Span{
			Hours:   hours,
			Minutes: minutes,
		},
	}
}

// PauseUntil returns an absolute-end pause spec.
func PauseUntil(hour, minute int) PauseSpec {
	return PauseSpec{
		Kind: PauseAbsoluteEnd,
		End: Target{
			Hour:   hour,
			Minute: minute,
		},
	}
}

// Validate checks the active variant.
func (p PauseSpec) Validate() error {
	switch p.Kind {
	case PauseNone:
		return nil
	case PauseDuration:
		if p.Duration.Hours < 0 || p.Duration.Minutes < 0 || p.Duration.Minutes >= MinutesPerHour {
			return fmt.Errorf("duration %s out of range: %w", p.Duration, ErrInvalidPause)
		}

		// Minute-of-day arithmetic wraps at midnight, so a day-long window never closes.
		if p.Duration.Hours >= HoursPerDay || p.Duration.TotalMinutes() >= MinutesPerDay {
			return fmt.Errorf("duration %s must be shorter than a day: %w", p.Duration, ErrInvalidPause)
		}

		return nil
	case PauseAbsoluteEnd:
		if err := p.End.Validate(); err != nil {
			return fmt.Errorf("end %s: %w", p.End, ErrInvalidPause)
		}

		return nil
	default:
		return fmt.Errorf("unknown pause kind %d: %w", p.Kind, ErrInvalidPause)
	}
}

// WindowEnd returns the minute at which a window opened at referenceStart
// closes. ok is false for PauseNone.
func (p PauseSpec) WindowEnd(referenceStart ClockReading) (Target, bool) {
	switch p.Kind {
	case PauseDuration:
		end := (referenceStart.MinuteOfDay() + p.Duration.TotalMinutes()) % MinutesPerDay

		return Target{Hour: end / MinutesPerHour, Minute: end % MinutesPerHour}, true
	case PauseAbsoluteEnd:
		return p.End, true
	case PauseNone:
	}

	return Target{}, false
}

// String describes the pause spec for logs.
func (p PauseSpec) String() string {
	switch p.Kind {
	case PauseDuration:
		return "for " + p.Duration.String()
	case PauseAbsoluteEnd:
		return "until " + p.End.String()
	default:
		return "none"
	}
}

// IsPaused reports whether now falls inside the pause window that opened at referenceStart.
// Elapsed time is computed on minutes of day modulo 24h, so windows may cross midnight.
func IsPaused(now ClockReading, spec PauseSpec, referenceStart ClockReading) bool {
	elapsed := minutesBetween(referenceStart.MinuteOfDay(), now.MinuteOfDay())

	switch spec.Kind {
	case PauseDuration:
		return elapsed < spec.Duration.TotalMinutes()
	case PauseAbsoluteEnd:
		return elapsed < minutesBetween(referenceStart.MinuteOfDay(), spec.End.MinuteOfDay())
	default:
		return false
	}
}

// minutesBetween returns the forward distance from one minute of day to another.
func minutesBetween(from, to int) int {
	return ((to-from)%MinutesPerDay + MinutesPerDay) % MinutesPerDay
}

// PauseAnchor selects the reference start of a pause window.
type PauseAnchor int

const (
	// AnchorArm opens the pause window at the moment the alarm is armed.
	AnchorArm PauseAnchor = iota
	// AnchorFire opens the pause window at the moment the alarm first matches.
	AnchorFire
)

// String returns the configuration name of the anchor.
func (a PauseAnchor) String() string {
	switch a {
	case AnchorArm:
		return "arm"
	case AnchorFire:
		return "fire"
	default:
		return "unknown"
	}
}

// ParsePauseAnchor converts a configuration value into an anchor. Empty means AnchorArm.
func ParsePauseAnchor(s string) (PauseAnchor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "arm":
		return AnchorArm, nil
	case "fire":
		return AnchorFire, nil
	default:
		return AnchorArm, fmt.Errorf("unknown pause anchor %q: %w", s, ErrInvalidPause)
	}
}
