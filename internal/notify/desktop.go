package notify

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
)

// windowsMessageTimeout is how many seconds msg.exe keeps the message on screen.
const windowsMessageTimeout = "60"

// Desktop shows notifications with the tools shipped by the OS:
// - Linux:   `notify-send`
// - macOS:   `osascript -e 'display notification ...'`
// - Windows: `msg.exe *`
// The commands are started asynchronously; the OS takes over the rest.
type Desktop struct {
	goos     string
	lookPath func(file string) (string, error)
	start    func(cmd *exec.Cmd) error
}

// NewDesktop returns a notifier for the current OS.
func NewDesktop() *Desktop {
	return &Desktop{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		start:    startDetached,
	}
}

// Name returns "desktop".
func (d *Desktop) Name() string { return "desktop" }

// Available reports whether the notification tool is installed.
func (d *Desktop) Available() bool {
	name, _ := d.command("", "")
	if name == "" {
		return false
	}

	_, err := d.lookPath(name)

	return err == nil
}

// Notify starts the notification tool without waiting for it.
func (d *Desktop) Notify(ctx context.Context, title, body string) error {
	name, args := d.command(title, body)
	if name == "" {
		return fmt.Errorf("unsupported operating system: %s: %w", d.goos, domain.ErrCollaboratorUnavailable)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if err := d.start(cmd); err != nil {
		return fmt.Errorf("start %s: %w: %w", name, domain.ErrSinkFailure, err)
	}

	logger.DebugKV(ctx, "Desktop notification sent", "title", title)

	return nil
}

// command builds the OS-specific command line.
func (d *Desktop) command(title, body string) (string, []string) {
	osName := strings.ToLower(d.goos)

	switch {
	case strings.Contains(osName, "linux"), strings.Contains(osName, "bsd"):
		return "notify-send", []string{"--app-name=alarm-clock", title, body}
	case strings.Contains(osName, "darwin"):
		script := fmt.Sprintf("display notification %s with title %s",
			strconv.Quote(body), strconv.Quote(title))

		return "osascript", []string{"-e", script}
	case strings.Contains(osName, "windows"):
		return "msg.exe", []string{"*", "/TIME:" + windowsMessageTimeout, title + ": " + body}
	default:
		return "", nil
	}
}

// startDetached starts the command and reaps it in the background.
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}

	go func() {
		_ = cmd.Wait()
	}()

	return nil
}
