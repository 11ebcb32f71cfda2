package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/service/client"
	"github.com/oshokin/alarm-clock/internal/version"
)

var (
	// cfgPath stores the configuration file path.
	cfgPath string
	// serverAddress overrides the daemon address from settings.
	serverAddress string
	// pauseFor is the pause duration as HH:MM.
	pauseFor string
	// pauseUntil is the pause end as HH:MM.
	pauseUntil string
	// pauseAnchor is arm or fire.
	pauseAnchor string
	// icsFile is where to export the armed alarm.
	icsFile string

	// rootCmd represents the base command for arming the alarm.
	rootCmd = &cobra.Command{
		Use:   "alarm-set [HH:MM]",
		Short: "Arm the alarm clock.",
		Long: `Arms the alarm daemon for the next occurrence of HH:MM.

Without an argument an interactive picker opens on the terminal where the alarm
time and an optional pause window can be chosen with the arrow keys.
Arming again replaces the previous alarm.

A pause window suppresses the alarm: when the armed minute falls inside it, the
alarm fires as soon as the window closes. The window is either a duration
(--pause-for) or an end time (--pause-until), and starts when the alarm is
armed or when the armed minute arrives (--pause-anchor).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			var alarmTime string
			if len(args) > 0 {
				alarmTime = args[0]
			}

			return client.Arm(ctx, &client.ArmOptions{
				Options: client.Options{
					ConfigPath:    cfgPath,
					ServerAddress: serverAddress,
				},
				Time:        alarmTime,
				PauseFor:    pauseFor,
				PauseUntil:  pauseUntil,
				PauseAnchor: pauseAnchor,
				ICSFile:     icsFile,
			})
		},
	}
)

// Execute runs the alarm-set CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.Flags()

	flags.StringVarP(&cfgPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	flags.StringVarP(&serverAddress, "server", "a", "", "daemon address (overrides settings)")
	flags.StringVar(&pauseFor, "pause-for", "", "suppress the alarm for HH:MM")
	flags.StringVar(&pauseUntil, "pause-until", "", "suppress the alarm until HH:MM")
	flags.StringVar(&pauseAnchor, "pause-anchor", "", "where the pause starts: arm or fire (default from settings)")
	flags.StringVar(&icsFile, "ics", "", "also write the armed alarm to this iCalendar file")

	rootCmd.MarkFlagsMutuallyExclusive("pause-for", "pause-until")
}
