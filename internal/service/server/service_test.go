package server

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-clock/internal/clock"
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/repository/history"
)

// bubbleClock reads the synctest fake clock, which starts at midnight UTC.
type bubbleClock struct{}

func (bubbleClock) Now() time.Time { return time.Now().UTC() }

// recorder collects side effects from the fake sinks.
type recorder struct {
	mu      sync.Mutex
	titles  []string
	bodies  []string
	tones   int
	records []history.Record
}

func (r *recorder) Notify(_ context.Context, title, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.titles = append(r.titles, title)
	r.bodies = append(r.bodies, body)

	return nil
}

func (r *recorder) Name() string    { return "recorder" }
func (r *recorder) Available() bool { return true }

func (r *recorder) PlayAlarmTone(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tones++

	return nil
}

func (r *recorder) StopAlarmTone() {}

func (r *recorder) Load(context.Context) ([]history.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]history.Record(nil), r.records...), nil
}

func (r *recorder) Append(_ context.Context, record history.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, record)

	return nil
}

func (r *recorder) snapshot() ([]string, []string, int, []history.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.titles...),
		append([]string(nil), r.bodies...),
		r.tones,
		append([]history.Record(nil), r.records...)
}

func counterIDs() func() string {
	var n int

	return func() string {
		n++

		return fmt.Sprintf("arm-%d", n)
	}
}

func newTestService(t *testing.T, src clock.Source) (*service, *recorder) {
	t.Helper()

	sinks := new(recorder)
	svc := newService(context.Background(), dependencies{
		clock:    src,
		notifier: sinks,
		tone:     sinks,
		history:  sinks,
		newID:    counterIDs(),
	})

	return svc, sinks
}

func intPtr(v int) *int { return &v }

func armCommand(hour, minute int) domain.ArmCommand {
	return domain.ArmCommand{
		Hour:   intPtr(hour),
		Minute: intPtr(minute),
		Pause:  domain.NoPause(),
		Actor:  &domain.Actor{Hostname: "host", Username: "user"},
	}
}

// TestService_FiresOnceAtTarget runs the real scheduler until the target minute.
func TestService_FiresOnceAtTarget(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		svc, sinks := newTestService(t, bubbleClock{})
		defer svc.Close()

		snapshot, err := svc.Arm(context.Background(), armCommand(0, 1))
		require.NoError(t, err)
		require.Equal(t, domain.Armed, snapshot.Session.State)
		require.Equal(t, "arm-1", snapshot.Session.ArmID)
		require.Equal(t, time.Date(2000, 1, 1, 0, 1, 0, 0, time.UTC), snapshot.NextFire)
		require.True(t, svc.loop.Running())

		time.Sleep(59 * time.Second)
		synctest.Wait()

		_, _, tones, _ := sinks.snapshot()
		require.Zero(t, tones)

		time.Sleep(time.Second)
		synctest.Wait()

		titles, bodies, tones, records := sinks.snapshot()
		require.Equal(t, 1, tones)
		require.Equal(t, []string{armedTitle, firedTitle}, titles)
		require.Equal(t, "Your alarm is set for: 00:01", bodies[0])
		require.Equal(t, "The time you set has arrived: 00:01", bodies[1])
		require.Len(t, records, 1)
		require.Equal(t, "fired", records[0].Outcome)
		require.Equal(t, "arm-1", records[0].ArmID)
		require.Equal(t, "user", records[0].Username)

		status := svc.Status(context.Background())
		require.Equal(t, domain.Idle, status.Session.State)
		require.Equal(t, domain.OutcomeFired, status.Session.LastOutcome)
		require.True(t, status.NextFire.IsZero())
		require.False(t, svc.loop.Running())

		// A full day later the alarm has not fired again.
		time.Sleep(24 * time.Hour)
		synctest.Wait()

		_, _, tones, _ = sinks.snapshot()
		require.Equal(t, 1, tones)
	})
}

// TestService_CancelStopsScheduler verifies no fire happens after cancel.
func TestService_CancelStopsScheduler(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		svc, sinks := newTestService(t, bubbleClock{})
		defer svc.Close()

		_, err := svc.Arm(context.Background(), armCommand(0, 1))
		require.NoError(t, err)

		time.Sleep(30 * time.Second)

		snapshot, err := svc.Cancel(context.Background(), nil)
		require.NoError(t, err)
		require.Equal(t, domain.Idle, snapshot.Session.State)
		require.Equal(t, domain.OutcomeCancelled, snapshot.Session.LastOutcome)
		require.Equal(t, "arm-1", snapshot.Session.LastArmID)

		time.Sleep(2 * time.Minute)
		synctest.Wait()

		_, _, tones, records := sinks.snapshot()
		require.Zero(t, tones)
		require.Len(t, records, 1)
		require.Equal(t, "cancelled", records[0].Outcome)
		require.False(t, svc.loop.Running())

		_, err = svc.Cancel(context.Background(), nil)
		require.ErrorIs(t, err, domain.ErrNotArmed)
	})
}

// TestService_RearmReplacesTarget keeps only the latest arm cycle.
func TestService_RearmReplacesTarget(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		svc, sinks := newTestService(t, bubbleClock{})
		defer svc.Close()

		_, err := svc.Arm(context.Background(), armCommand(0, 2))
		require.NoError(t, err)

		time.Sleep(10 * time.Second)

		snapshot, err := svc.Arm(context.Background(), armCommand(0, 1))
		require.NoError(t, err)
		require.Equal(t, "arm-2", snapshot.Session.ArmID)

		time.Sleep(5 * time.Minute)
		synctest.Wait()

		_, _, tones, records := sinks.snapshot()
		require.Equal(t, 1, tones)
		require.Len(t, records, 1)
		require.Equal(t, "arm-2", records[0].ArmID)
		require.Equal(t, "00:01", records[0].Target)
	})
}

// TestService_PauseDefersFire holds the fire until the window closes.
func TestService_PauseDefersFire(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		svc, sinks := newTestService(t, bubbleClock{})
		defer svc.Close()

		cmd := armCommand(0, 1)
		cmd.Pause = domain.PauseFor(0, 3)

		// The window opened at 00:00 and closes at 00:03.
		windowEnd := time.Date(2000, 1, 1, 0, 3, 0, 0, time.UTC)

		snapshot, err := svc.Arm(context.Background(), cmd)
		require.NoError(t, err)
		require.Equal(t, windowEnd, snapshot.NextFire)

		time.Sleep(90 * time.Second)
		synctest.Wait()

		status := svc.Status(context.Background())
		require.Equal(t, domain.Paused, status.Session.State)
		require.True(t, status.Session.Deferred)
		require.Equal(t, windowEnd, status.NextFire)

		_, _, tones, _ := sinks.snapshot()
		require.Zero(t, tones)

		time.Sleep(90 * time.Second)
		synctest.Wait()

		_, _, tones, records := sinks.snapshot()
		require.Equal(t, 1, tones)
		require.True(t, records[0].Deferred)
		require.Equal(t, "for 00:03", records[0].Pause)
	})
}

// TestService_ArmAtTargetSecondFiresImmediately evaluates the first reading synchronously.
func TestService_ArmAtTargetSecondFiresImmediately(t *testing.T) {
	t.Parallel()

	manual := clock.NewManual(time.Date(2026, 10, 18, 7, 30, 0, 0, time.UTC))
	svc, sinks := newTestService(t, manual)

	snapshot, err := svc.Arm(context.Background(), armCommand(7, 30))
	require.NoError(t, err)
	require.Equal(t, domain.Idle, snapshot.Session.State)
	require.Equal(t, domain.OutcomeFired, snapshot.Session.LastOutcome)
	require.False(t, svc.loop.Running())

	svc.Close()

	titles, _, tones, records := sinks.snapshot()
	require.Equal(t, 1, tones)
	require.Len(t, records, 1)
	require.Equal(t, []string{firedTitle}, titles)
}

// TestService_ArmValidation leaves the session untouched on bad input.
func TestService_ArmValidation(t *testing.T) {
	t.Parallel()

	manual := clock.NewManual(time.Date(2026, 10, 18, 7, 0, 0, 0, time.UTC))
	svc, sinks := newTestService(t, manual)

	defer svc.Close()

	_, err := svc.Arm(context.Background(), domain.ArmCommand{Minute: intPtr(0)})
	require.ErrorIs(t, err, domain.ErrInvalidTarget)

	_, err = svc.Arm(context.Background(), armCommand(24, 0))
	require.ErrorIs(t, err, domain.ErrInvalidTarget)

	cmd := armCommand(8, 0)
	cmd.Anchor = "sunrise"
	_, err = svc.Arm(context.Background(), cmd)
	require.ErrorIs(t, err, domain.ErrInvalidPause)

	cmd = armCommand(8, 0)
	cmd.Pause = domain.PauseFor(24, 0)
	_, err = svc.Arm(context.Background(), cmd)
	require.ErrorIs(t, err, domain.ErrInvalidPause)

	status := svc.Status(context.Background())
	require.Equal(t, domain.Idle, status.Session.State)
	require.False(t, svc.loop.Running())

	titles, _, _, _ := sinks.snapshot()
	require.Empty(t, titles)
}

// TestService_AnchorDefaults uses the configured anchor unless the request names one.
func TestService_AnchorDefaults(t *testing.T) {
	t.Parallel()

	manual := clock.NewManual(time.Date(2026, 10, 18, 7, 0, 10, 0, time.UTC))
	sinks := new(recorder)
	svc := newService(context.Background(), dependencies{
		clock:    manual,
		notifier: sinks,
		tone:     sinks,
		anchor:   domain.AnchorFire,
		interval: time.Hour,
	})

	defer svc.Close()

	cmd := armCommand(8, 0)
	cmd.Pause = domain.PauseFor(0, 5)

	snapshot, err := svc.Arm(context.Background(), cmd)
	require.NoError(t, err)
	require.Equal(t, domain.AnchorFire, snapshot.Session.Anchor)
	require.False(t, snapshot.Session.HasReference)
	require.Equal(t, manual.Now(), snapshot.ArmedAt)

	cmd.Anchor = "arm"
	snapshot, err = svc.Arm(context.Background(), cmd)
	require.NoError(t, err)
	require.Equal(t, domain.AnchorArm, snapshot.Session.Anchor)
	require.True(t, snapshot.Session.HasReference)
	require.NotEmpty(t, snapshot.Session.ArmID)
}

// TestResolveListenAddress keeps the configured host.
func TestResolveListenAddress(t *testing.T) {
	t.Parallel()

	addr, err := resolveListenAddress("127.0.0.1:50551", "")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:50551", addr)

	addr, err = resolveListenAddress("127.0.0.1:50551", ":9090")
	require.NoError(t, err)
	require.Equal(t, ":9090", addr)

	_, err = resolveListenAddress("", "")
	require.ErrorIs(t, err, ErrNoServerAddress)

	_, err = resolveListenAddress("no-port", "")
	require.Error(t, err)
}
