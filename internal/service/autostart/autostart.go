// Package autostart registers the alarm daemon to start when the user logs in.
package autostart

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/emersion/go-autostart"

	"github.com/oshokin/alarm-clock/internal/logger"
)

const (
	// appName is the file name of the autostart entry.
	appName = "alarm-clock"
	// displayName is shown by desktop environments.
	displayName = "Alarm Clock"
)

// Entry is a login autostart registration.
type Entry interface {
	IsEnabled() bool
	Enable() error
	Disable() error
}

// NewEntry returns the autostart entry that launches the running executable
// with the provided settings file.
func NewEntry(configPath string) (*autostart.App, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve executable: %w", err)
	}

	// Resolve symlinks if any.
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, fmt.Errorf("resolve executable: %w", err)
	}

	return &autostart.App{
		Name:        appName,
		DisplayName: displayName,
		Exec:        command(execPath, configPath),
	}, nil
}

// Set enables or disables the entry. Both directions are idempotent.
func Set(ctx context.Context, entry Entry, enable bool) error {
	switch {
	case enable && !entry.IsEnabled():
		if err := entry.Enable(); err != nil {
			return fmt.Errorf("enable autostart: %w", err)
		}

		logger.Info(ctx, "Autostart enabled")
	case !enable && entry.IsEnabled():
		if err := entry.Disable(); err != nil {
			return fmt.Errorf("disable autostart: %w", err)
		}

		logger.Info(ctx, "Autostart disabled")
	default:
		logger.InfoKV(ctx, "Autostart already in requested state", "enabled", enable)
	}

	return nil
}

func command(execPath, configPath string) []string {
	if configPath == "" {
		return []string{execPath}
	}

	if abs, err := filepath.Abs(configPath); err == nil {
		configPath = abs
	}

	return []string{execPath, "--config", configPath}
}
