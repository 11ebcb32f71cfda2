package alarm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSession_NextFire predicts fires with and without pause windows.
func TestSession_NextFire(t *testing.T) {
	t.Parallel()

	now := mustTime(t, "2026-10-18T06:00:00Z")
	reading := ReadingOf(now)

	_, ok := Session{}.NextFire(now)
	require.False(t, ok)

	cases := []struct {
		name string
		req  ArmRequest
		want string
	}{
		{
			name: "no pause",
			req:  ArmRequest{Target: Target{Hour: 7, Minute: 30}},
			want: "2026-10-18T07:30:00Z",
		},
		{
			name: "target inside window from arm",
			req:  ArmRequest{Target: Target{Hour: 6, Minute: 30}, Pause: PauseFor(1, 0)},
			want: "2026-10-18T07:00:00Z",
		},
		{
			name: "target after window from arm",
			req:  ArmRequest{Target: Target{Hour: 8, Minute: 0}, Pause: PauseFor(1, 0)},
			want: "2026-10-18T08:00:00Z",
		},
		{
			name: "window from fire",
			req:  ArmRequest{Target: Target{Hour: 7, Minute: 30}, Pause: PauseFor(0, 15), Anchor: AnchorFire},
			want: "2026-10-18T07:45:00Z",
		},
		{
			name: "empty window from fire",
			req:  ArmRequest{Target: Target{Hour: 7, Minute: 30}, Pause: PauseFor(0, 0), Anchor: AnchorFire},
			want: "2026-10-18T07:30:00Z",
		},
		{
			name: "window end on the next day",
			req:  ArmRequest{Target: Target{Hour: 23, Minute: 0}, Pause: PauseUntil(5, 0)},
			want: "2026-10-19T05:00:00Z",
		},
	}

	for _, tc := range cases {
		s := mustArm(t, tc.req, reading)

		got, ok := s.NextFire(now)
		require.True(t, ok, tc.name)
		require.Equal(t, mustTime(t, tc.want), got, tc.name)
	}
}

// TestSession_NextFireDeferred points at the window end once a match is pending.
func TestSession_NextFireDeferred(t *testing.T) {
	t.Parallel()

	s := mustArm(t, ArmRequest{Target: Target{Hour: 6, Minute: 30}, Pause: PauseUntil(7, 10)}, At(6, 0, 0))

	s, step := s.Tick(At(6, 30, 0))
	require.Nil(t, step.Fire)
	require.True(t, s.Deferred)

	got, ok := s.NextFire(mustTime(t, "2026-10-18T06:40:10Z"))
	require.True(t, ok)
	require.Equal(t, mustTime(t, "2026-10-18T07:10:00Z"), got)
}

func TestPauseSpec_WindowEnd(t *testing.T) {
	t.Parallel()

	end, ok := PauseFor(1, 45).WindowEnd(At(23, 30, 12))
	require.True(t, ok)
	require.Equal(t, Target{Hour: 1, Minute: 15}, end)

	end, ok = PauseUntil(6, 0).WindowEnd(At(22, 0, 0))
	require.True(t, ok)
	require.Equal(t, Target{Hour: 6}, end)

	_, ok = NoPause().WindowEnd(At(22, 0, 0))
	require.False(t, ok)
}
