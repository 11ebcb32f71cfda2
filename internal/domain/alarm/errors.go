package alarm

import "errors"

var (
	// ErrInvalidTarget is returned when an arm request carries a missing or out-of-range hour or minute.
	ErrInvalidTarget = errors.New("invalid alarm target")
	// ErrInvalidPause is returned when the pause window specification cannot be evaluated.
	ErrInvalidPause = errors.New("invalid pause window")
	// ErrNotArmed is returned when a cancel request arrives while no alarm is armed.
	ErrNotArmed = errors.New("alarm is not armed")
	// ErrCollaboratorUnavailable marks a picker or sink that is not present on this host.
	ErrCollaboratorUnavailable = errors.New("collaborator unavailable")
	// ErrSinkFailure marks a notification or audio sink that failed to render a fire event.
	ErrSinkFailure = errors.New("sink failure")
)
