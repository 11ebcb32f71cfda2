package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	apiv1 "github.com/oshokin/alarm-clock/internal/api/v1"
	"github.com/oshokin/alarm-clock/internal/calendar"
	"github.com/oshokin/alarm-clock/internal/config"
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/picker"
	"github.com/oshokin/alarm-clock/internal/service/common"
)

// Options configures the connection shared by all client commands.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string
	// ServerAddress overrides server address from config when specified.
	ServerAddress string
	// Out receives the printed status; defaults to stdout.
	Out io.Writer
}

// ArmOptions configures alarm-set.
type ArmOptions struct {
	Options

	// Time is the alarm time as HH:MM; empty opens the terminal picker.
	Time string
	// PauseFor is a pause duration as HH:MM.
	PauseFor string
	// PauseUntil is a pause end time as HH:MM.
	PauseUntil string
	// PauseAnchor is arm or fire; empty uses the daemon default.
	PauseAnchor string
	// ICSFile is where to export the armed alarm; empty skips the export.
	ICSFile string
	// In is the picker input; defaults to stdin.
	In io.Reader
}

// errPauseFlagsConflict is returned when both pause variants are requested.
var errPauseFlagsConflict = errors.New("--pause-for and --pause-until are mutually exclusive")

// Arm selects the alarm time and arms the daemon.
func Arm(ctx context.Context, opts *ArmOptions) error {
	ctx = logger.WithName(ctx, "alarm-set")

	pause, err := parsePause(opts.PauseFor, opts.PauseUntil)
	if err != nil {
		return err
	}

	selection, pause, err := selectTime(ctx, opts, pause)
	if err != nil {
		return err
	}

	return withClient(ctx, &opts.Options, func(client *common.Client, actor *apiv1.SystemActor) error {
		request, err := buildArmRequest(selection, pause, opts.PauseAnchor, actor)
		if err != nil {
			return err
		}

		response, err := client.Arm(ctx, request)
		if err != nil {
			return err
		}

		printStatus(&opts.Options, response)

		if opts.ICSFile == "" {
			return nil
		}

		return exportCalendar(ctx, opts.ICSFile, response)
	})
}

// Cancel cancels the armed alarm.
func Cancel(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "alarm-cancel")

	return withClient(ctx, opts, func(client *common.Client, actor *apiv1.SystemActor) error {
		response, err := client.Cancel(ctx, actor)
		if err != nil {
			return err
		}

		printStatus(opts, response)

		return nil
	})
}

// Status prints the alarm status. With checkHealth it probes the health service first.
func Status(ctx context.Context, opts *Options, checkHealth bool) error {
	ctx = logger.WithName(ctx, "alarm-status")

	return withClient(ctx, opts, func(client *common.Client, _ *apiv1.SystemActor) error {
		if checkHealth {
			if err := client.Health(ctx); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(output(opts), "daemon: serving")
		}

		response, err := client.GetStatus(ctx)
		if err != nil {
			return err
		}

		printStatus(opts, response)

		return nil
	})
}

// withClient loads settings, detects the actor and runs fn with a connected client.
func withClient(
	ctx context.Context,
	opts *Options,
	fn func(client *common.Client, actor *apiv1.SystemActor) error,
) error {
	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	if err = logger.Configure(cfg.LogLevel); err != nil {
		return err
	}

	// Use server address from options if provided, otherwise use config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	// Identify current user and hostname for audit logging.
	actor, err := common.DetectActor()
	if err != nil {
		return err
	}

	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return err
	}

	// Close connection on function exit.
	defer func() {
		_ = client.Close()
	}()

	logger.DebugKV(ctx, "Connected to alarm daemon", "server_address", serverAddress)

	return fn(client, actor)
}

// selectTime returns the picker holding the alarm time and the pause to request.
// Without a time argument the terminal form chooses both.
func selectTime(ctx context.Context, opts *ArmOptions, pause domain.PauseSpec) (picker.TimePicker, domain.PauseSpec, error) {
	if opts.Time != "" {
		static, err := picker.ParseStatic(opts.Time)
		if err != nil {
			return nil, pause, err
		}

		return static, pause, nil
	}

	in := opts.In
	if in == nil {
		in = os.Stdin
	}

	now := time.Now()
	form := picker.NewForm()
	form.SetInitialTime(now.Hour(), now.Minute())

	if err := picker.Run(ctx, form, in, output(&opts.Options)); err != nil {
		if errors.Is(err, domain.ErrCollaboratorUnavailable) {
			return nil, pause, fmt.Errorf("pass the alarm time as HH:MM: %w", err)
		}

		return nil, pause, err
	}

	if pause.Kind == domain.PauseNone {
		pause = form.SelectedPause()
	}

	return form, pause, nil
}

// parsePause converts the pause flags into a validated pause spec.
func parsePause(pauseFor, pauseUntil string) (domain.PauseSpec, error) {
	var pause domain.PauseSpec

	switch {
	case pauseFor != "" && pauseUntil != "":
		return domain.NoPause(), fmt.Errorf("%w: %w", domain.ErrInvalidPause, errPauseFlagsConflict)
	case pauseFor != "":
		hours, minutes, err := domain.ParseHHMM(pauseFor)
		if err != nil {
			return domain.NoPause(), fmt.Errorf("%w: --pause-for: %w", domain.ErrInvalidPause, err)
		}

		pause = domain.PauseFor(hours, minutes)
	case pauseUntil != "":
		hour, minute, err := domain.ParseHHMM(pauseUntil)
		if err != nil {
			return domain.NoPause(), fmt.Errorf("%w: --pause-until: %w", domain.ErrInvalidPause, err)
		}

		pause = domain.PauseUntil(hour, minute)
	default:
		return domain.NoPause(), nil
	}

	if err := pause.Validate(); err != nil {
		return domain.NoPause(), err
	}

	return pause, nil
}

// buildArmRequest copies the selection into the wire request, keeping nil values nil.
// Values that do not fit the wire type are refused instead of truncated.
func buildArmRequest(
	selection picker.TimePicker,
	pause domain.PauseSpec,
	anchor string,
	actor *apiv1.SystemActor,
) (*apiv1.ArmRequest, error) {
	hour, err := toInt32Ptr(selection.SelectedHour(), domain.ErrInvalidTarget)
	if err != nil {
		return nil, fmt.Errorf("hour: %w", err)
	}

	minute, err := toInt32Ptr(selection.SelectedMinute(), domain.ErrInvalidTarget)
	if err != nil {
		return nil, fmt.Errorf("minute: %w", err)
	}

	if err = pause.Validate(); err != nil {
		return nil, err
	}

	request := &apiv1.ArmRequest{
		Hour:        hour,
		Minute:      minute,
		PauseAnchor: anchor,
		Actor:       actor,
	}

	switch pause.Kind {
	case domain.PauseDuration:
		request.PauseFor = &apiv1.PauseDuration{
			Hours:   int32(pause.Duration.Hours),   //nolint:gosec // Validate keeps it below 24.
			Minutes: int32(pause.Duration.Minutes), //nolint:gosec // Validate keeps it in [0,59].
		}
	case domain.PauseAbsoluteEnd:
		request.PauseUntil = &apiv1.ClockTime{
			Hour:   int32(pause.End.Hour),   //nolint:gosec // Validate keeps it in [0,23].
			Minute: int32(pause.End.Minute), //nolint:gosec // Validate keeps it in [0,59].
		}
	case domain.PauseNone:
	}

	return request, nil
}

// exportCalendar writes the armed alarm as an iCalendar file.
func exportCalendar(ctx context.Context, path string, response *apiv1.AlarmStatusResponse) error {
	target := response.GetTarget()
	if target == nil {
		logger.InfoKV(ctx, "Alarm is no longer armed, calendar export skipped", "state", response.GetState())

		return nil
	}

	armedAt := time.Now()
	if response.GetArmedAt() != nil {
		armedAt = *response.GetArmedAt()
	}

	alarm := calendar.Alarm{
		ArmID:   response.GetArmID(),
		Target:  domain.Target{Hour: int(target.GetHour()), Minute: int(target.GetMinute())},
		Pause:   pauseFromResponse(response),
		ArmedAt: armedAt,
	}

	if err := calendar.WriteFile(path, alarm); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Calendar file written", "file", path)

	return nil
}

func pauseFromResponse(response *apiv1.AlarmStatusResponse) domain.PauseSpec {
	switch {
	case response.GetPauseFor() != nil:
		return domain.PauseFor(int(response.GetPauseFor().GetHours()), int(response.GetPauseFor().GetMinutes()))
	case response.GetPauseUntil() != nil:
		return domain.PauseUntil(int(response.GetPauseUntil().GetHour()), int(response.GetPauseUntil().GetMinute()))
	default:
		return domain.NoPause()
	}
}

func printStatus(opts *Options, response *apiv1.AlarmStatusResponse) {
	_, _ = fmt.Fprintln(output(opts), FormatStatus(response))
}

func output(opts *Options) io.Writer {
	if opts.Out == nil {
		return os.Stdout
	}

	return opts.Out
}

// toInt32Ptr converts v for the wire. Values outside the int32 range are
// reported with sentinel.
func toInt32Ptr(v *int, sentinel error) (*int32, error) {
	if v == nil {
		return nil, nil //nolint:nilnil // A missing selection stays missing.
	}

	if *v < math.MinInt32 || *v > math.MaxInt32 {
		return nil, fmt.Errorf("%d does not fit in 32 bits: %w", *v, sentinel)
	}

	i := int32(*v)

	return &i, nil
}
