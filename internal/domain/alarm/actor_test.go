package alarm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)

	return parsed
}

// TestActorClone verifies that Clone returns a deep copy and handles nil safely.
func TestActorClone(t *testing.T) {
	t.Parallel()
	require.Nil(t, (*Actor)(nil).Clone())

	a := &Actor{
		Hostname: "workstation",
		Username: "o.shokin",
	}

	b := a.Clone()

	require.Equal(t, a, b)
	require.NotSame(t, a, b)
	require.Equal(t, "o.shokin@workstation", b.String())
	require.Equal(t, "<unknown>", (*Actor)(nil).String())
}

// TestReadingOf takes the wall clock of the timestamp's own location.
func TestReadingOf(t *testing.T) {
	t.Parallel()

	ts := mustTime(t, "2026-10-18T23:59:07+03:00")
	require.Equal(t, At(23, 59, 7), ReadingOf(ts))
	require.Equal(t, "23:59:07", ReadingOf(ts).String())
	require.Equal(t, 23*60+59, ReadingOf(ts).MinuteOfDay())
}

// TestStateNames keeps the wire names of states stable.
func TestStateNames(t *testing.T) {
	t.Parallel()

	for _, state := range []State{Idle, Armed, Firing, Paused, Cancelled} {
		parsed, ok := ParseState(state.String())
		require.True(t, ok)
		require.Equal(t, state, parsed)
	}

	_, ok := ParseState("sleeping")
	require.False(t, ok)
}
