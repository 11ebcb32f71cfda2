// Package calendar exports an armed alarm as an iCalendar file so it also
// shows up in calendar applications.
package calendar

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/emersion/go-ical"

	"github.com/oshokin/alarm-clock/internal/config"
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// productID identifies the generator in exported files.
const productID = "-//oshokin//alarm-clock//EN"

// Alarm describes an armed alarm to export.
type Alarm struct {
	// ArmID becomes the event UID.
	ArmID string
	// Target is the armed minute.
	Target domain.Target
	// Pause is the configured pause window.
	Pause domain.PauseSpec
	// ArmedAt is when the alarm was armed; the event starts at the next occurrence of Target after it.
	ArmedAt time.Time
}

// Encode writes a VCALENDAR with one VEVENT that carries a DISPLAY VALARM.
func Encode(w io.Writer, alarm Alarm) error {
	start := alarm.Target.Next(alarm.ArmedAt).UTC()

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, alarm.ArmID+"@alarm-clock")
	event.Props.SetDateTime(ical.PropDateTimeStamp, alarm.ArmedAt.UTC())
	event.Props.SetDateTime(ical.PropDateTimeStart, start)
	event.Props.SetDateTime(ical.PropDateTimeEnd, start.Add(time.Minute))
	event.Props.SetText(ical.PropSummary, "Alarm "+alarm.Target.String())

	if alarm.Pause.Kind != domain.PauseNone {
		event.Props.SetText(ical.PropDescription, "Pause "+alarm.Pause.String())
	}

	reminder := ical.NewComponent(ical.CompAlarm)
	reminder.Props.SetText(ical.PropAction, "DISPLAY")
	reminder.Props.SetText(ical.PropDescription, "Alarm "+alarm.Target.String())

	trigger := ical.NewProp(ical.PropTrigger)
	trigger.Value = "PT0S"
	reminder.Props.Set(trigger)

	event.Children = append(event.Children, reminder)

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)
	cal.Children = append(cal.Children, event.Component)

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}

	return nil
}

// WriteFile encodes the alarm into path.
func WriteFile(path string, alarm Alarm) error {
	file, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, config.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("create calendar file: %w", err)
	}

	if err = Encode(file, alarm); err != nil {
		_ = file.Close()

		return err
	}

	return file.Close()
}
