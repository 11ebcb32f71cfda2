package notify

import (
	"context"
	"fmt"

	"github.com/oshokin/alarm-clock/internal/config"
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
)

// Notifier is a best-effort notification sink.
type Notifier interface {
	// Notify shows a message. It must not block for the lifetime of the message.
	Notify(ctx context.Context, title, body string) error
	// Name identifies the sink in logs.
	Name() string
	// Available reports whether the sink can deliver on this host.
	Available() bool
}

// Select returns the notifier configured by kind.
// An unavailable sink is logged and replaced by Nop.
func Select(ctx context.Context, kind string) Notifier {
	var n Notifier

	switch kind {
	case config.NotifierLog:
		n = Log{}
	case config.NotifierNone:
		return Nop{}
	default:
		n = NewDesktop()
	}

	if !n.Available() {
		logger.WarnKV(ctx, "Notification sink is unavailable, notifications are disabled",
			"sink", n.Name(),
			"error", fmt.Errorf("%s: %w", n.Name(), domain.ErrCollaboratorUnavailable),
		)

		return Nop{}
	}

	return n
}

// Log writes notifications to the application log.
type Log struct{}

// Notify logs the message at info level.
func (Log) Notify(ctx context.Context, title, body string) error {
	logger.InfoKV(ctx, title, "body", body)

	return nil
}

// Name returns "log".
func (Log) Name() string { return config.NotifierLog }

// Available always returns true.
func (Log) Available() bool { return true }

// Nop discards notifications.
type Nop struct{}

// Notify does nothing.
func (Nop) Notify(context.Context, string, string) error { return nil }

// Name returns "none".
func (Nop) Name() string { return config.NotifierNone }

// Available always returns true.
func (Nop) Available() bool { return true }
