package picker

import (
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// TimePicker exposes the hour and minute chosen by the user.
// A nil value means nothing was selected.
type TimePicker interface {
	SelectedHour() *int
	SelectedMinute() *int
	SetInitialTime(hour, minute int)
}

// PausePicker is implemented by pickers that also choose a pause window.
type PausePicker interface {
	SelectedPause() domain.PauseSpec
}

// Static is a picker with fixed values, for example from a command line argument.
type Static struct {
	hour   *int
	minute *int
}

// NewStatic returns a picker that has selected hour:minute.
func NewStatic(hour, minute int) *Static {
	return &Static{
		hour:   &hour,
		minute: &minute,
	}
}

// ParseStatic returns a picker for an "HH:MM" string. An empty string
// yields a picker with nothing selected; anything else must be a valid
// alarm time or ErrInvalidTarget is returned.
func ParseStatic(s string) (*Static, error) {
	if s == "" {
		return new(Static), nil
	}

	target, err := domain.ParseTarget(s)
	if err != nil {
		return nil, err
	}

	return NewStatic(target.Hour, target.Minute), nil
}

// SelectedHour returns the selected hour or nil.
func (s *Static) SelectedHour() *int {
	return copyInt(s.hour)
}

// SelectedMinute returns the selected minute or nil.
func (s *Static) SelectedMinute() *int {
	return copyInt(s.minute)
}

// SetInitialTime fills in values that were not selected.
func (s *Static) SetInitialTime(hour, minute int) {
	if s.hour == nil {
		s.hour = &hour
	}

	if s.minute == nil {
		s.minute = &minute
	}
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}

	c := *v

	return &c
}
