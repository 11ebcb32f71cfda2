package setup

import (
	"context"
	"errors"
	"net/http"

	"github.com/oshokin/alarm-clock/internal/audio"
	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/service/autostart"
)

// errToneURLRequired is returned by FetchTone when settings have no tone URL.
var errToneURLRequired = errors.New("tone.url must be set in settings")

// Autostart enables or disables launching the daemon at login with the given settings file.
func Autostart(ctx context.Context, configPath string, enable bool) error {
	ctx = logger.WithName(ctx, "autostart")

	// Settings are loaded only to refuse registering a broken file.
	if _, err := config.Load(configPath); err != nil {
		return err
	}

	entry, err := autostart.NewEntry(configPath)
	if err != nil {
		return err
	}

	return autostart.Set(ctx, entry, enable)
}

// FetchTone downloads the tone configured in settings and installs it as tone.file.
func FetchTone(ctx context.Context, configPath string) error {
	ctx = logger.WithName(ctx, "tone-fetch")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if err = logger.Configure(cfg.LogLevel); err != nil {
		return err
	}

	return fetchTone(ctx, &http.Client{Timeout: cfg.Timeout}, cfg)
}

func fetchTone(ctx context.Context, client *http.Client, cfg *config.Config) error {
	if cfg.Tone.URL == "" {
		return errToneURLRequired
	}

	logger.InfoKV(ctx, "Fetching alarm tone", "url", cfg.Tone.URL, "file", cfg.Tone.File)

	return audio.Fetch(ctx, client, cfg.Tone.URL, cfg.Tone.File, cfg.Tone.SHA512)
}
