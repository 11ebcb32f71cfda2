package autostart

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var errDenied = errors.New("denied")

type fakeEntry struct {
	enabled  bool
	calls    int
	failWith error
}

func (f *fakeEntry) IsEnabled() bool { return f.enabled }

func (f *fakeEntry) Enable() error {
	f.calls++
	if f.failWith != nil {
		return f.failWith
	}

	f.enabled = true

	return nil
}

func (f *fakeEntry) Disable() error {
	f.calls++
	if f.failWith != nil {
		return f.failWith
	}

	f.enabled = false

	return nil
}

// TestSet_Idempotent only touches the entry when the state changes.
func TestSet_Idempotent(t *testing.T) {
	t.Parallel()

	entry := new(fakeEntry)
	ctx := context.Background()

	require.NoError(t, Set(ctx, entry, true))
	require.NoError(t, Set(ctx, entry, true))
	require.True(t, entry.enabled)
	require.Equal(t, 1, entry.calls)

	require.NoError(t, Set(ctx, entry, false))
	require.NoError(t, Set(ctx, entry, false))
	require.False(t, entry.enabled)
	require.Equal(t, 2, entry.calls)
}

// TestSet_Failure wraps the platform error.
func TestSet_Failure(t *testing.T) {
	t.Parallel()

	err := Set(context.Background(), &fakeEntry{failWith: errDenied}, true)
	require.ErrorIs(t, err, errDenied)
}

// TestCommand passes an absolute settings path.
func TestCommand(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"/bin/alarm-clock"}, command("/bin/alarm-clock", ""))

	got := command("/bin/alarm-clock", "settings.yaml")
	require.Len(t, got, 3)
	require.Equal(t, "--config", got[1])
	require.True(t, filepath.IsAbs(got[2]))

	entry, err := NewEntry("")
	require.NoError(t, err)
	require.Equal(t, appName, entry.Name)
}
