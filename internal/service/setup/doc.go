// Package setup implements the maintenance subcommands of alarm-clock:
// registering the daemon for login autostart and installing the alarm tone.
package setup
