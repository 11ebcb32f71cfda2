package picker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// ErrAborted is returned by Run when the user leaves the form without submitting.
var ErrAborted = errors.New("time selection aborted")

// field identifies a focusable control of the form.
type field int

const (
	fieldAlarmHour field = iota
	fieldAlarmMinute
	fieldMode
	fieldPauseHour
	fieldPauseMinute
)

// pauseModes is the radio order of pause kinds.
var pauseModes = []domain.PauseKind{domain.PauseNone, domain.PauseDuration, domain.PauseAbsoluteEnd}

// Form is a Bubble Tea model that selects the alarm time and an optional pause window.
type Form struct {
	keys keyMap
	help help.Model

	alarmHour   Carousel
	alarmMinute Carousel

	mode        int
	forHours    Carousel
	forMinutes  Carousel
	untilHour   Carousel
	untilMinute Carousel

	focus     int
	submitted bool
	aborted   bool
}

// NewForm creates a form with every carousel at 00.
func NewForm() *Form {
	return &Form{
		keys:        newKeyMap(),
		help:        help.New(),
		alarmHour:   NewCarousel("hour", domain.HoursPerDay),
		alarmMinute: NewCarousel("min", domain.MinutesPerHour),
		forHours:    NewCarousel("hours", domain.HoursPerDay),
		forMinutes:  NewCarousel("mins", domain.MinutesPerHour),
		untilHour:   NewCarousel("hour", domain.HoursPerDay),
		untilMinute: NewCarousel("min", domain.MinutesPerHour),
	}
}

// SetInitialTime positions the alarm carousels.
func (f *Form) SetInitialTime(hour, minute int) {
	f.alarmHour.SetValue(hour)
	f.alarmMinute.SetValue(minute)
}

// SelectedHour returns the chosen hour once the form was submitted.
func (f *Form) SelectedHour() *int {
	if !f.submitted {
		return nil
	}

	v := f.alarmHour.Value()

	return &v
}

// SelectedMinute returns the chosen minute once the form was submitted.
func (f *Form) SelectedMinute() *int {
	if !f.submitted {
		return nil
	}

	v := f.alarmMinute.Value()

	return &v
}

// SelectedPause returns the chosen pause window. Only the active mode's carousels are read.
func (f *Form) SelectedPause() domain.PauseSpec {
	if !f.submitted {
		return domain.NoPause()
	}

	switch pauseModes[f.mode] {
	case domain.PauseDuration:
		return domain.PauseFor(f.forHours.Value(), f.forMinutes.Value())
	case domain.PauseAbsoluteEnd:
		return domain.PauseUntil(f.untilHour.Value(), f.untilMinute.Value())
	default:
		return domain.NoPause()
	}
}

// Aborted reports whether the user cancelled the form.
func (f *Form) Aborted() bool {
	return f.aborted
}

// Init implements tea.Model.
func (f *Form) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.help.Width = msg.Width
	case tea.KeyMsg:
		order := f.focusOrder()

		switch {
		case key.Matches(msg, f.keys.Quit):
			f.aborted = true

			return f, tea.Quit
		case key.Matches(msg, f.keys.Submit):
			f.submitted = true

			return f, tea.Quit
		case key.Matches(msg, f.keys.Next):
			f.focus = (f.focus + 1) % len(order)
		case key.Matches(msg, f.keys.Prev):
			f.focus = (f.focus - 1 + len(order)) % len(order)
		case key.Matches(msg, f.keys.Up):
			f.scroll(order[f.focus], -1)
		case key.Matches(msg, f.keys.Down):
			f.scroll(order[f.focus], 1)
		}
	}

	return f, nil
}

// View implements tea.Model.
func (f *Form) View() string {
	if f.submitted || f.aborted {
		return ""
	}

	focused := f.focusOrder()[f.focus]

	var b strings.Builder

	b.WriteString(titleStyle.Render("Set alarm"))
	b.WriteString("\n")
	b.WriteString(groupStyle.Render(pair(f.alarmHour, f.alarmMinute, focused, fieldAlarmHour)))
	b.WriteString("\n\n")
	b.WriteString(f.radioView(focused == fieldMode))
	b.WriteString("\n")

	switch pauseModes[f.mode] {
	case domain.PauseDuration:
		b.WriteString(groupStyle.Render(pair(f.forHours, f.forMinutes, focused, fieldPauseHour)))
		b.WriteString("\n")
	case domain.PauseAbsoluteEnd:
		b.WriteString(groupStyle.Render(pair(f.untilHour, f.untilMinute, focused, fieldPauseHour)))
		b.WriteString("\n")
	case domain.PauseNone:
	}

	b.WriteString("\n")
	b.WriteString(f.help.View(f.keys))

	return b.String()
}

// focusOrder lists the controls reachable in the current pause mode.
func (f *Form) focusOrder() []field {
	order := []field{fieldAlarmHour, fieldAlarmMinute, fieldMode}
	if pauseModes[f.mode] != domain.PauseNone {
		order = append(order, fieldPauseHour, fieldPauseMinute)
	}

	return order
}

func (f *Form) scroll(target field, delta int) {
	var c *Carousel

	switch target {
	case fieldAlarmHour:
		c = &f.alarmHour
	case fieldAlarmMinute:
		c = &f.alarmMinute
	case fieldMode:
		f.mode = (f.mode + delta + len(pauseModes)) % len(pauseModes)

		return
	case fieldPauseHour:
		c = &f.forHours
		if pauseModes[f.mode] == domain.PauseAbsoluteEnd {
			c = &f.untilHour
		}
	case fieldPauseMinute:
		c = &f.forMinutes
		if pauseModes[f.mode] == domain.PauseAbsoluteEnd {
			c = &f.untilMinute
		}
	}

	if delta < 0 {
		c.Prev()
	} else {
		c.Next()
	}
}

func (f *Form) radioView(focused bool) string {
	labels := map[domain.PauseKind]string{
		domain.PauseNone:        "No pause",
		domain.PauseDuration:    "Pause for",
		domain.PauseAbsoluteEnd: "Pause until",
	}

	items := make([]string, 0, len(pauseModes))

	for i, kind := range pauseModes {
		mark := "( )"
		if i == f.mode {
			mark = "(•)"
		}

		style := radioStyle
		if focused && i == f.mode {
			style = focusedRadioStyle
		}

		items = append(items, style.Render(mark+" "+labels[kind]))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

// pair renders two carousels as HH:MM; first is the field of the left one.
func pair(left, right Carousel, focused, first field) string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		left.View(focused == first),
		"\n\n:",
		right.View(focused == first+1),
	)
}

// Run shows the form on a terminal until the user submits or aborts it.
// in must be a terminal when it is an *os.File.
func Run(ctx context.Context, form *Form, in io.Reader, out io.Writer) error {
	if file, ok := in.(*os.File); ok && !isTerminal(file) {
		return fmt.Errorf("%s is not a terminal: %w", file.Name(), domain.ErrCollaboratorUnavailable)
	}

	program := tea.NewProgram(form,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run time picker: %w", err)
	}

	if form.Aborted() {
		return ErrAborted
	}

	return nil
}

func isTerminal(file *os.File) bool {
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
