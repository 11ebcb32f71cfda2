package alarm

import "fmt"

// ArmRequest carries everything needed to arm a session.
type ArmRequest struct {
	// ID identifies the arm cycle in logs and history.
	ID string
	// Target is the wall-clock minute to fire at.
	Target Target
	// Pause is the optional suppression window.
	Pause PauseSpec
	// Anchor selects the reference start of the pause window.
	Anchor PauseAnchor
	// Actor is who armed the alarm.
	Actor *Actor
}

// Transition records a single state change and the reading that caused it.
type Transition struct {
	// From is the state before the change.
	From State
	// To is the state after the change.
	To State
	// At is the clock reading at which the change happened.
	At ClockReading
}

// FireEvent is emitted exactly once per arm cycle when the alarm fires.
type FireEvent struct {
	// ArmID identifies the arm cycle that fired.
	ArmID string
	// Target is the minute the alarm was armed for.
	Target Target
	// At is the reading at which dispatch happened.
	At ClockReading
	// Deferred is true when the match happened inside a pause window and dispatch waited for it to close.
	Deferred bool
	// Actor is who armed the alarm.
	Actor *Actor
}

// Step is the observable result of one session operation.
type Step struct {
	// Transitions lists state changes in the order they happened.
	Transitions []Transition
	// Fire is set only when the session went through Firing.
	Fire *FireEvent
}

// Session is the alarm lifecycle value. It is never mutated in place: every
// operation returns the next session.
type Session struct {
	// State is the current lifecycle state.
	State State
	// ArmID identifies the current arm cycle.
	ArmID string
	// Target is the armed minute, meaningful while Active.
	Target Target
	// Pause is the configured suppression window.
	Pause PauseSpec
	// Anchor selects the reference start of the pause window.
	Anchor PauseAnchor
	// ArmedAt is the reading at which the session was armed.
	ArmedAt ClockReading
	// ReferenceStart is where the pause window opens, valid when HasReference is set.
	ReferenceStart ClockReading
	// HasReference is false until the pause window has been anchored.
	HasReference bool
	// LastReading is the reading of the previous tick, valid when HasLastReading is set.
	LastReading ClockReading
	// HasLastReading is false until the first tick after arming.
	HasLastReading bool
	// Deferred is true when the target matched while paused and dispatch is pending.
	Deferred bool
	// Actor is who armed the current cycle.
	Actor *Actor
	// LastOutcome is how the previous arm cycle ended.
	LastOutcome Outcome
	// LastArmID identifies the previous arm cycle.
	LastArmID string
}

// Active reports whether the session is armed, paused or not.
func (s Session) Active() bool {
	return s.State == Armed || s.State == Paused
}

// Clone returns a copy that shares no pointers with s.
func (s Session) Clone() Session {
	s.Actor = s.Actor.Clone()

	return s
}

// Arm validates the request and starts a fresh arm cycle from any state,
// overwriting the previous target and pause configuration. On validation
// failure the session is returned unchanged.
func (s Session) Arm(req ArmRequest, now ClockReading) (Session, Step, error) {
	if err := req.Target.Validate(); err != nil {
		return s, Step{}, err
	}

	if err := req.Pause.Validate(); err != nil {
		return s, Step{}, err
	}

	if req.Anchor != AnchorArm && req.Anchor != AnchorFire {
		return s, Step{}, fmt.Errorf("anchor %d: %w", req.Anchor, ErrInvalidPause)
	}

	next := Session{
		State:       Armed,
		ArmID:       req.ID,
		Target:      req.Target,
		Pause:       req.Pause,
		Anchor:      req.Anchor,
		ArmedAt:     now,
		Actor:       req.Actor.Clone(),
		LastOutcome: s.LastOutcome,
		LastArmID:   s.LastArmID,
	}

	if req.Pause.Kind != PauseNone && req.Anchor == AnchorArm {
		next.ReferenceStart = now
		next.HasReference = true
	}

	step := Step{
		Transitions: []Transition{{From: s.State, To: Armed, At: now}},
	}

	return next, step, nil
}

// Cancel ends an active arm cycle. The session passes through Cancelled and
// settles in Idle; no fire can happen for the cancelled cycle.
func (s Session) Cancel(now ClockReading) (Session, Step, error) {
	if !s.Active() {
		return s, Step{}, ErrNotArmed
	}

	next := Session{
		State:       Idle,
		LastOutcome: OutcomeCancelled,
		LastArmID:   s.ArmID,
	}

	step := Step{
		Transitions: []Transition{
			{From: s.State, To: Cancelled, At: now},
			{From: Cancelled, To: Idle, At: now},
		},
	}

	return next, step, nil
}

// Tick evaluates one clock reading against the session.
func (s Session) Tick(now ClockReading) (Session, Step) {
	var step Step

	switch s.State {
	case Firing, Cancelled:
		// Both settle immediately; a session observed here came from outside Arm/Cancel/Tick.
		step.Transitions = append(step.Transitions, Transition{From: s.State, To: Idle, At: now})
		s.State = Idle

		return s, step
	case Idle:
		return s, step
	case Armed, Paused:
	}

	matched := s.matches(now)
	s.LastReading = now
	s.HasLastReading = true

	if matched && s.Anchor == AnchorFire && s.Pause.Kind != PauseNone && !s.HasReference {
		s.ReferenceStart = now
		s.HasReference = true
	}

	if s.HasReference && IsPaused(now, s.Pause, s.ReferenceStart) {
		if matched {
			s.Deferred = true
		}

		if s.State != Paused {
			step.Transitions = append(step.Transitions, Transition{From: s.State, To: Paused, At: now})
			s.State = Paused
		}

		return s, step
	}

	if s.State == Paused {
		step.Transitions = append(step.Transitions, Transition{From: Paused, To: Armed, At: now})
		s.State = Armed
	}

	if !matched && !s.Deferred {
		return s, step
	}

	step.Fire = &FireEvent{
		ArmID:    s.ArmID,
		Target:   s.Target,
		At:       now,
		Deferred: s.Deferred,
		Actor:    s.Actor.Clone(),
	}

	step.Transitions = append(step.Transitions,
		Transition{From: Armed, To: Firing, At: now},
		Transition{From: Firing, To: Idle, At: now},
	)

	return Session{
		State:       Idle,
		LastOutcome: OutcomeFired,
		LastArmID:   s.ArmID,
	}, step
}

// matches reports whether now is the first reading of the target minute.
// Under a 1 Hz cadence that is the hh:mm:00 reading; when a second is skipped,
// the first reading after entering the target minute still counts, once.
func (s Session) matches(now ClockReading) bool {
	if !s.Target.Within(now) {
		return false
	}

	if now.Second == 0 {
		return !s.HasLastReading || s.LastReading != now
	}

	return s.HasLastReading && !s.Target.Within(s.LastReading)
}
