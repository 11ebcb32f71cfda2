package picker

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
)

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(f *Form, keys ...string) {
	for _, k := range keys {
		f.Update(keyPress(k))
	}
}

// TestStatic covers command line values and the empty selection.
func TestStatic(t *testing.T) {
	t.Parallel()

	p, err := ParseStatic("07:05")
	require.NoError(t, err)
	require.Equal(t, 7, *p.SelectedHour())
	require.Equal(t, 5, *p.SelectedMinute())

	// Returned pointers are copies.
	*p.SelectedHour() = 9
	require.Equal(t, 7, *p.SelectedHour())

	empty, err := ParseStatic("")
	require.NoError(t, err)
	require.Nil(t, empty.SelectedHour())
	require.Nil(t, empty.SelectedMinute())

	_, err = domain.NewTarget(empty.SelectedHour(), empty.SelectedMinute())
	require.ErrorIs(t, err, domain.ErrInvalidTarget)

	empty.SetInitialTime(6, 30)
	require.Equal(t, 6, *empty.SelectedHour())

	// Initial time never overrides a selection.
	p.SetInitialTime(1, 1)
	require.Equal(t, 7, *p.SelectedHour())

	for _, arg := range []string{"25:00", "07:60", "4294967303:00", "noon"} {
		_, err = ParseStatic(arg)
		require.ErrorIs(t, err, domain.ErrInvalidTarget, arg)
	}
}

// TestCarousel_Wraps scrolls past both ends.
func TestCarousel_Wraps(t *testing.T) {
	t.Parallel()

	c := NewCarousel("hour", 24)
	c.Prev()
	require.Equal(t, 23, c.Value())
	c.Next()
	require.Equal(t, 0, c.Value())

	c.SetValue(-1)
	require.Equal(t, 23, c.Value())
	c.SetValue(49)
	require.Equal(t, 1, c.Value())

	view := c.View(true)
	require.Contains(t, view, "00")
	require.Contains(t, view, "01")
	require.Contains(t, view, "02")
}

// TestForm_SelectsAlarmTime scrolls the alarm carousels and submits.
func TestForm_SelectsAlarmTime(t *testing.T) {
	t.Parallel()

	f := NewForm()
	f.SetInitialTime(10, 0)

	require.Nil(t, f.SelectedHour())
	require.Contains(t, f.View(), "Set alarm")

	press(f, "down", "tab", "up", "up")
	require.Nil(t, f.SelectedMinute())

	_, cmd := f.Update(keyPress("enter"))
	require.NotNil(t, cmd)

	require.Equal(t, 11, *f.SelectedHour())
	require.Equal(t, 58, *f.SelectedMinute())
	require.Equal(t, domain.NoPause(), f.SelectedPause())
	require.False(t, f.Aborted())
	require.Empty(t, f.View())
}

// TestForm_PauseModes picks each radio option.
func TestForm_PauseModes(t *testing.T) {
	t.Parallel()

	// Duration: focus mode, move to "Pause for", then set 1h 30m.
	f := NewForm()
	press(f, "tab", "tab", "down")
	require.Contains(t, f.View(), "(•) Pause for")
	press(f, "tab", "down", "tab", "j")
	for range 29 {
		press(f, "down")
	}

	press(f, "enter")
	require.Equal(t, domain.PauseFor(1, 30), f.SelectedPause())

	// Until: two steps down from "No pause", end at 06:45.
	f = NewForm()
	press(f, "shift+tab", "down", "down")
	press(f, "tab")
	for range 6 {
		press(f, "down")
	}

	press(f, "tab")
	for range 15 {
		press(f, "up")
	}

	press(f, "enter")
	require.Equal(t, domain.PauseUntil(6, 45), f.SelectedPause())
}

// TestForm_SwitchingBackToNoneHidesPauseFields keeps focus reachable.
func TestForm_SwitchingBackToNoneHidesPauseFields(t *testing.T) {
	t.Parallel()

	f := NewForm()
	press(f, "tab", "tab", "down")
	require.Len(t, f.focusOrder(), 5)

	press(f, "up")
	require.Len(t, f.focusOrder(), 3)
	require.NotContains(t, f.View(), "hours")

	// Tab wraps from the mode field to the alarm hour.
	press(f, "tab", "down", "enter")
	require.Equal(t, 1, *f.SelectedHour())
}

// TestForm_Abort leaves nothing selected.
func TestForm_Abort(t *testing.T) {
	t.Parallel()

	f := NewForm()
	press(f, "down", "esc")
	require.True(t, f.Aborted())
	require.Nil(t, f.SelectedHour())
}

// TestRun_NotATerminal reports an unavailable picker.
func TestRun_NotATerminal(t *testing.T) {
	t.Parallel()

	file, err := os.Create(filepath.Join(t.TempDir(), "input"))
	require.NoError(t, err)

	defer file.Close()

	err = Run(context.Background(), NewForm(), file, new(bytes.Buffer))
	require.ErrorIs(t, err, domain.ErrCollaboratorUnavailable)
}

// TestRun_ScriptedInput drives the program through a reader.
func TestRun_ScriptedInput(t *testing.T) {
	t.Parallel()

	f := NewForm()
	f.SetInitialTime(7, 0)

	err := Run(context.Background(), f, strings.NewReader("j\r"), new(bytes.Buffer))
	require.NoError(t, err)
	require.Equal(t, 8, *f.SelectedHour())
	require.Equal(t, 0, *f.SelectedMinute())

	err = Run(context.Background(), NewForm(), strings.NewReader("q"), new(bytes.Buffer))
	require.ErrorIs(t, err, ErrAborted)
}
