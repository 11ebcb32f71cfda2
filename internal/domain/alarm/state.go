package alarm

// State is the lifecycle state of a session.
type State int

const (
	// Idle means no target is armed.
	Idle State = iota
	// Armed means a target is set and the scheduler is polling.
	Armed
	// Firing means the target matched on this tick and side effects were dispatched.
	Firing
	// Paused means the session is armed but inside a pause window.
	Paused
	// Cancelled means the user cancelled before the alarm fired.
	Cancelled
)

// String returns a lower-case name of the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Armed:
		return "armed"
	case Firing:
		return "firing"
	case Paused:
		return "paused"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ParseState converts a state name back into a State.
func ParseState(s string) (State, bool) {
	for _, state := range []State{Idle, Armed, Firing, Paused, Cancelled} {
		if state.String() == s {
			return state, true
		}
	}

	return Idle, false
}

// Outcome is how the previous arm cycle ended.
type Outcome int

const (
	// OutcomeNone means no arm cycle has ended yet.
	OutcomeNone Outcome = iota
	// OutcomeFired means the alarm fired.
	OutcomeFired
	// OutcomeCancelled means the alarm was cancelled before firing.
	OutcomeCancelled
)

// String returns a lower-case name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeFired:
		return "fired"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "none"
	}
}
