package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/service/setup"
)

// newAutostartCommand builds `alarm-clock autostart enable|disable`.
func newAutostartCommand() *cobra.Command {
	autostartCmd := &cobra.Command{
		Use:   "autostart",
		Short: "Manage starting the daemon at login.",
	}

	for _, enable := range []bool{true, false} {
		use, short := "enable", "Start the daemon at login with the current settings file."
		if !enable {
			use, short = "disable", "Stop starting the daemon at login."
		}

		autostartCmd.AddCommand(&cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return setup.Autostart(cmd.Context(), configPath, enable)
			},
		})
	}

	return autostartCmd
}

// newToneCommand builds `alarm-clock tone fetch`.
func newToneCommand() *cobra.Command {
	toneCmd := &cobra.Command{
		Use:   "tone",
		Short: "Manage the alarm tone.",
	}

	toneCmd.AddCommand(&cobra.Command{
		Use:   "fetch",
		Short: "Download the alarm tone from tone.url in settings.",
		Long: `Downloads a 16-bit PCM WAV file from tone.url and installs it as tone.file.

When tone.sha512 is set, the file is installed only if its base64 SHA-512 matches.
The previous tone is replaced atomically.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return setup.FetchTone(ctx, configPath)
		},
	})

	return toneCmd
}
