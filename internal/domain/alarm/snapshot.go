package alarm

import "time"

// ArmCommand is an arm request as received from a client, before validation.
type ArmCommand struct {
	// Hour and Minute are the picker selection; nil means nothing was selected.
	Hour   *int
	Minute *int
	// Pause is the requested pause window.
	Pause PauseSpec
	// Anchor names the pause anchor; empty selects the configured default.
	Anchor string
	// Actor is who asked to arm.
	Actor *Actor
}

// Snapshot is a point-in-time view of the session with wall-clock times attached.
type Snapshot struct {
	// Session is a copy of the session.
	Session Session
	// ArmedAt is when the current cycle was armed; zero when not active.
	ArmedAt time.Time
	// NextFire is when the session is expected to fire, pause windows included; zero when not active.
	NextFire time.Time
}

// NextFire predicts when an active session fires, assuming it is not
// re-armed or cancelled. A match that lands inside the pause window moves to
// the minute the window closes. ok is false when the session is not active.
func (s Session) NextFire(now time.Time) (time.Time, bool) {
	if !s.Active() {
		return time.Time{}, false
	}

	if s.Deferred {
		end, _ := s.Pause.WindowEnd(s.ReferenceStart)

		return end.Next(now), true
	}

	match := s.Target.Next(now)
	if s.Pause.Kind == PauseNone {
		return match, true
	}

	reference := s.ReferenceStart
	if !s.HasReference {
		// Anchored at fire: the window opens on the match itself.
		reference = ReadingOf(match)
	}

	if !IsPaused(ReadingOf(match), s.Pause, reference) {
		return match, true
	}

	end, _ := s.Pause.WindowEnd(reference)

	return end.Next(match), true
}
