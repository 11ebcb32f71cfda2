package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// TestValidate checks required fields and format validations for Config.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Missing socket.
	settings := new(Config)

	err := Validate(settings)
	require.Error(t, err)

	// Bad socket.
	settings = &Config{
		ServerAddress: "bad:address",
	}

	err = Validate(settings)
	require.Error(t, err)

	// Unknown notifier.
	settings = &Config{
		ServerAddress: "127.0.0.1:0",
		Notifier:      "pager",
	}

	require.Error(t, Validate(settings))

	// Unknown anchor.
	settings = &Config{
		ServerAddress: "127.0.0.1:0",
		PauseAnchor:   "midnight",
	}

	require.ErrorIs(t, Validate(settings), alarm.ErrInvalidPause)

	// Bad tone settings.
	for _, tone := range []Tone{
		{Duration: -time.Second},
		{Frequency: -1},
		{URL: "not a url"},
		{SHA512: "%%%"},
	} {
		settings = &Config{
			ServerAddress: "127.0.0.1:0",
			Tone:          tone,
		}

		require.Error(t, Validate(settings))
	}
}

// TestValidate_Defaults ensures a minimal config is completed with defaults.
func TestValidate_Defaults(t *testing.T) {
	t.Parallel()

	settings := &Config{
		ServerAddress: "127.0.0.1:50551",
		Notifier:      " LOG ",
		PauseAnchor:   "fire",
	}

	require.NoError(t, Validate(settings))
	require.Equal(t, DefaultTimeout, settings.Timeout)
	require.Equal(t, DefaultHistoryFilename, settings.HistoryFile)
	require.Equal(t, DefaultHistoryLimit, settings.HistoryLimit)
	require.Equal(t, NotifierLog, settings.Notifier)
	require.Equal(t, alarm.AnchorFire, settings.Anchor())
	require.Equal(t, DefaultToneFilename, settings.Tone.File)
	require.Equal(t, DefaultToneDuration, settings.Tone.Duration)
	require.Equal(t, DefaultToneFrequency, settings.Tone.Frequency)

	settings = &Config{ServerAddress: "127.0.0.1:50551"}
	require.NoError(t, Validate(settings))
	require.Equal(t, NotifierDesktop, settings.Notifier)
	require.Equal(t, alarm.AnchorArm, settings.Anchor())
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	settings := &Config{
		ServerAddress: "127.0.0.1:50551",
		Timeout:       2 * time.Second,
		Notifier:      NotifierNone,
		Tone: Tone{
			URL:      "https://sounds.local/beep.wav",
			Duration: 3 * time.Second,
			Disabled: true,
		},
	}

	require.NoError(t, Save(path, settings))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, settings, loaded)

	// File exists with restricted permissions.
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(DefaultFilePermissions), info.Mode().Perm())
}

// TestLoad_Missing surfaces the read error.
func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	require.Error(t, Save("", nil))
}
