package alarm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestIsPaused_DurationCrossesMidnight covers the 23:30 + 1h window.
func TestIsPaused_DurationCrossesMidnight(t *testing.T) {
	t.Parallel()

	spec := PauseFor(1, 0)
	start := At(23, 30, 0)

	require.True(t, IsPaused(At(23, 30, 0), spec, start))
	require.True(t, IsPaused(At(0, 15, 0), spec, start))
	require.True(t, IsPaused(At(0, 29, 59), spec, start))
	require.False(t, IsPaused(At(0, 30, 0), spec, start))
	require.False(t, IsPaused(At(0, 45, 0), spec, start))
	require.False(t, IsPaused(At(23, 29, 0), spec, start))
}

// TestIsPaused_ZeroDurationNeverPauses sweeps every minute of the day.
func TestIsPaused_ZeroDurationNeverPauses(t *testing.T) {
	t.Parallel()

	spec := PauseFor(0, 0)

	for minute := range MinutesPerDay {
		now := At(minute/MinutesPerHour, minute%MinutesPerHour, 0)
		require.False(t, IsPaused(now, spec, now))
		require.False(t, IsPaused(now, spec, At(12, 0, 0)))
	}
}

// TestIsPaused_AbsoluteEnd checks same-day and next-day end times.
func TestIsPaused_AbsoluteEnd(t *testing.T) {
	t.Parallel()

	sameDay := PauseUntil(10, 30)
	start := At(10, 0, 0)

	require.True(t, IsPaused(At(10, 0, 0), sameDay, start))
	require.True(t, IsPaused(At(10, 29, 0), sameDay, start))
	require.False(t, IsPaused(At(10, 30, 0), sameDay, start))
	require.False(t, IsPaused(At(11, 0, 0), sameDay, start))

	// An end earlier than the start means tomorrow.
	nextDay := PauseUntil(6, 0)
	start = At(22, 0, 0)

	require.True(t, IsPaused(At(23, 59, 0), nextDay, start))
	require.True(t, IsPaused(At(5, 59, 0), nextDay, start))
	require.False(t, IsPaused(At(6, 0, 0), nextDay, start))
	require.False(t, IsPaused(At(12, 0, 0), nextDay, start))

	// Ending where it starts is an empty window.
	require.False(t, IsPaused(At(22, 0, 0), PauseUntil(22, 0), start))
}

// TestIsPaused_IgnoresInactiveVariant verifies that only the active variant is read.
func TestIsPaused_IgnoresInactiveVariant(t *testing.T) {
	t.Parallel()

	start := At(8, 0, 0)

	none := PauseSpec{Kind: PauseNone, Duration: Span{Hours: 5}, End: Target{Hour: 20}}
	require.False(t, IsPaused(At(8, 1, 0), none, start))

	duration := PauseSpec{Kind: PauseDuration, Duration: Span{Minutes: 1}, End: Target{Hour: 20}}
	require.False(t, IsPaused(At(8, 1, 0), duration, start))

	end := PauseSpec{Kind: PauseAbsoluteEnd, Duration: Span{Hours: 10}, End: Target{Hour: 8, Minute: 1}}
	require.False(t, IsPaused(At(8, 1, 0), end, start))
}

// TestParsePauseAnchor maps configuration strings to anchors.
func TestParsePauseAnchor(t *testing.T) {
	t.Parallel()

	cases := map[string]PauseAnchor{
		"":      AnchorArm,
		"arm":   AnchorArm,
		" Fire": AnchorFire,
	}
	for s, want := range cases {
		got, err := ParsePauseAnchor(s)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParsePauseAnchor("later")
	require.ErrorIs(t, err, ErrInvalidPause)
}

// TestTargetNext finds the next wall-clock occurrence.
func TestTargetNext(t *testing.T) {
	t.Parallel()

	from := mustTime(t, "2026-10-18T10:00:30Z")

	require.Equal(t, mustTime(t, "2026-10-18T10:01:00Z"), Target{Hour: 10, Minute: 1}.Next(from))
	require.Equal(t, mustTime(t, "2026-10-19T10:00:00Z"), Target{Hour: 10, Minute: 0}.Next(from))
	require.Equal(t, mustTime(t, "2026-10-19T09:00:00Z"), Target{Hour: 9, Minute: 0}.Next(from))
}
