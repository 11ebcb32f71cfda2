package client

import (
	"fmt"
	"strings"
	"time"

	apiv1 "github.com/oshokin/alarm-clock/internal/api/v1"
)

// FormatStatus renders an alarm status as one human-readable line.
func FormatStatus(status *apiv1.AlarmStatusResponse) string {
	if status == nil {
		return "<nil status>"
	}

	var b strings.Builder

	b.WriteString(status.GetState())

	if target := status.GetTarget(); target != nil {
		fmt.Fprintf(&b, " for %02d:%02d", target.GetHour(), target.GetMinute())
	}

	if next := status.GetNextFire(); next != nil {
		fmt.Fprintf(&b, ", next %s", next.Local().Format(time.DateTime))
	}

	switch {
	case status.GetPauseFor() != nil:
		fmt.Fprintf(&b, ", pause for %02d:%02d", status.GetPauseFor().GetHours(), status.GetPauseFor().GetMinutes())
	case status.GetPauseUntil() != nil:
		fmt.Fprintf(&b, ", pause until %02d:%02d", status.GetPauseUntil().GetHour(), status.GetPauseUntil().GetMinute())
	}

	if status.GetPauseFor() != nil || status.GetPauseUntil() != nil {
		fmt.Fprintf(&b, " from %s", status.PauseAnchor)
	}

	if status.Deferred {
		b.WriteString(", fires when the pause ends")
	}

	if actor := status.GetActor(); actor != nil {
		fmt.Fprintf(&b, ", by %s@%s", actor.GetUsername(), actor.GetHostname())
	}

	if outcome := status.GetLastOutcome(); outcome != "" {
		fmt.Fprintf(&b, " (last alarm %s)", outcome)
	}

	return b.String()
}
