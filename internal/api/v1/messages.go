package apiv1

import "time"

// ClockTime is a wall-clock minute.
type ClockTime struct {
	Hour   int32 `json:"hour"`
	Minute int32 `json:"minute"`
}

// GetHour returns the hour or 0 for nil.
func (x *ClockTime) GetHour() int32 {
	if x == nil {
		return 0
	}

	return x.Hour
}

// GetMinute returns the minute or 0 for nil.
func (x *ClockTime) GetMinute() int32 {
	if x == nil {
		return 0
	}

	return x.Minute
}

// PauseDuration is the length of a pause window.
type PauseDuration struct {
	Hours   int32 `json:"hours"`
	Minutes int32 `json:"minutes"`
}

// GetHours returns the hours or 0 for nil.
func (x *PauseDuration) GetHours() int32 {
	if x == nil {
		return 0
	}

	return x.Hours
}

// GetMinutes returns the minutes or 0 for nil.
func (x *PauseDuration) GetMinutes() int32 {
	if x == nil {
		return 0
	}

	return x.Minutes
}

// SystemActor identifies the machine and user issuing a request.
type SystemActor struct {
	Hostname string `json:"hostname"`
	Username string `json:"username"`
}

// GetHostname returns the hostname or "" for nil.
func (x *SystemActor) GetHostname() string {
	if x == nil {
		return ""
	}

	return x.Hostname
}

// GetUsername returns the username or "" for nil.
func (x *SystemActor) GetUsername() string {
	if x == nil {
		return ""
	}

	return x.Username
}

// ArmRequest arms the alarm. Hour and Minute are pointers so that a missing
// selection can be told apart from midnight. At most one of PauseFor and
// PauseUntil may be set.
type ArmRequest struct {
	Hour        *int32         `json:"hour,omitempty"`
	Minute      *int32         `json:"minute,omitempty"`
	PauseFor    *PauseDuration `json:"pause_for,omitempty"`
	PauseUntil  *ClockTime     `json:"pause_until,omitempty"`
	PauseAnchor string         `json:"pause_anchor,omitempty"`
	Actor       *SystemActor   `json:"actor,omitempty"`
}

// GetHour returns the selected hour or nil.
func (x *ArmRequest) GetHour() *int32 {
	if x == nil {
		return nil
	}

	return x.Hour
}

// GetMinute returns the selected minute or nil.
func (x *ArmRequest) GetMinute() *int32 {
	if x == nil {
		return nil
	}

	return x.Minute
}

// GetPauseFor returns the pause duration or nil.
func (x *ArmRequest) GetPauseFor() *PauseDuration {
	if x == nil {
		return nil
	}

	return x.PauseFor
}

// GetPauseUntil returns the pause end or nil.
func (x *ArmRequest) GetPauseUntil() *ClockTime {
	if x == nil {
		return nil
	}

	return x.PauseUntil
}

// GetPauseAnchor returns the pause anchor name or "".
func (x *ArmRequest) GetPauseAnchor() string {
	if x == nil {
		return ""
	}

	return x.PauseAnchor
}

// GetActor returns the actor or nil.
func (x *ArmRequest) GetActor() *SystemActor {
	if x == nil {
		return nil
	}

	return x.Actor
}

// CancelRequest cancels the armed alarm.
type CancelRequest struct {
	Actor *SystemActor `json:"actor,omitempty"`
}

// GetActor returns the actor or nil.
func (x *CancelRequest) GetActor() *SystemActor {
	if x == nil {
		return nil
	}

	return x.Actor
}

// GetStatusRequest asks for the current alarm status.
type GetStatusRequest struct{}

// AlarmStatusResponse is a snapshot of the alarm session.
type AlarmStatusResponse struct {
	State       string         `json:"state"`
	ArmID       string         `json:"arm_id,omitempty"`
	Target      *ClockTime     `json:"target,omitempty"`
	PauseFor    *PauseDuration `json:"pause_for,omitempty"`
	PauseUntil  *ClockTime     `json:"pause_until,omitempty"`
	PauseAnchor string         `json:"pause_anchor,omitempty"`
	Deferred    bool           `json:"deferred,omitempty"`
	ArmedAt     *time.Time     `json:"armed_at,omitempty"`
	NextFire    *time.Time     `json:"next_fire,omitempty"`
	Actor       *SystemActor   `json:"actor,omitempty"`
	LastOutcome string         `json:"last_outcome,omitempty"`
	LastArmID   string         `json:"last_arm_id,omitempty"`
}

// GetState returns the state name or "".
func (x *AlarmStatusResponse) GetState() string {
	if x == nil {
		return ""
	}

	return x.State
}

// GetArmID returns the arm ID or "".
func (x *AlarmStatusResponse) GetArmID() string {
	if x == nil {
		return ""
	}

	return x.ArmID
}

// GetTarget returns the armed minute or nil.
func (x *AlarmStatusResponse) GetTarget() *ClockTime {
	if x == nil {
		return nil
	}

	return x.Target
}

// GetPauseFor returns the pause duration or nil.
func (x *AlarmStatusResponse) GetPauseFor() *PauseDuration {
	if x == nil {
		return nil
	}

	return x.PauseFor
}

// GetPauseUntil returns the pause end or nil.
func (x *AlarmStatusResponse) GetPauseUntil() *ClockTime {
	if x == nil {
		return nil
	}

	return x.PauseUntil
}

// GetArmedAt returns when the alarm was armed or nil.
func (x *AlarmStatusResponse) GetArmedAt() *time.Time {
	if x == nil {
		return nil
	}

	return x.ArmedAt
}

// GetNextFire returns when the alarm is expected to fire, pause windows included, or nil.
func (x *AlarmStatusResponse) GetNextFire() *time.Time {
	if x == nil {
		return nil
	}

	return x.NextFire
}

// GetActor returns the actor that armed the alarm or nil.
func (x *AlarmStatusResponse) GetActor() *SystemActor {
	if x == nil {
		return nil
	}

	return x.Actor
}

// GetLastOutcome returns how the previous arm cycle ended.
func (x *AlarmStatusResponse) GetLastOutcome() string {
	if x == nil {
		return ""
	}

	return x.LastOutcome
}
