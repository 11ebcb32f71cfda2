package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oshokin/alarm-clock/internal/config"
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
)

// Player is the audio sink used by the alarm service.
type Player interface {
	PlayAlarmTone(ctx context.Context) error
	StopAlarmTone()
}

// Tone plays the configured alarm tone and stops it after a fixed duration.
type Tone struct {
	backend   Backend
	settings  config.Tone
	readFile  func(name string) ([]byte, error)
	mu        sync.Mutex
	current   Playback
	timer     *time.Timer
	generated []byte
}

// NewTone creates a tone sink. A zero Duration or Frequency in settings is
// replaced by the defaults from config.
func NewTone(backend Backend, settings config.Tone) *Tone {
	if settings.Duration <= 0 {
		settings.Duration = config.DefaultToneDuration
	}

	if settings.Frequency <= 0 {
		settings.Frequency = config.DefaultToneFrequency
	}

	return &Tone{
		backend:  backend,
		settings: settings,
		readFile: os.ReadFile,
	}
}

// PlayAlarmTone starts the tone, replacing one that is still playing.
// It returns once playback has started.
func (t *Tone) PlayAlarmTone(ctx context.Context) error {
	if t.settings.Disabled {
		logger.Debug(ctx, "Alarm tone is disabled")

		return nil
	}

	data, err := t.load(ctx)
	if err != nil {
		return err
	}

	format, pcm, err := parseWAV(data)
	if err != nil {
		return fmt.Errorf("decode tone: %w: %w", domain.ErrSinkFailure, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()

	playback, err := t.backend.Loop(ctx, format, pcm)
	if err != nil {
		return err
	}

	t.current = playback
	t.timer = time.AfterFunc(t.settings.Duration, func() {
		t.mu.Lock()
		defer t.mu.Unlock()

		if t.current == playback {
			t.stopLocked()
		}
	})

	logger.DebugKV(ctx, "Alarm tone started", "duration", t.settings.Duration)

	return nil
}

// StopAlarmTone stops the tone early. It is a no-op when nothing plays.
func (t *Tone) StopAlarmTone() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
}

// Playing reports whether a tone is currently playing.
func (t *Tone) Playing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.current != nil
}

func (t *Tone) stopLocked() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}

	if t.current != nil {
		t.current.Stop()
		t.current = nil
	}
}

// load reads the tone file or falls back to a synthesised beep when the file does not exist.
func (t *Tone) load(ctx context.Context) ([]byte, error) {
	data, err := t.readFile(filepath.Clean(t.settings.File))
	switch {
	case err == nil:
		return data, nil
	case errors.Is(err, os.ErrNotExist):
		t.mu.Lock()
		defer t.mu.Unlock()

		if t.generated == nil {
			logger.DebugKV(ctx, "Tone file not found, synthesising a beep", "file", t.settings.File)
			t.generated = Beep(t.settings.Frequency, t.settings.Duration)
		}

		return t.generated, nil
	default:
		return nil, fmt.Errorf("read tone: %w: %w", domain.ErrSinkFailure, err)
	}
}
