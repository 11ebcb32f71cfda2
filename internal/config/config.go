package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// Config holds settings shared by the daemon and the CLI clients.
type Config struct {
	// ServerAddress is the gRPC address of the alarm daemon.
	ServerAddress string `yaml:"server_addr"`
	// Timeout is the duration for RPC calls and tone downloads.
	Timeout time.Duration `yaml:"timeout"`
	// HistoryFile is the path to the YAML file with past arm-cycle outcomes.
	HistoryFile string `yaml:"history_file"`
	// HistoryLimit is how many outcomes the history file keeps.
	HistoryLimit int `yaml:"history_limit"`
	// Notifier selects the notification sink: desktop, log or none.
	Notifier string `yaml:"notifier"`
	// PauseAnchor selects the default reference start of pause windows: arm or fire.
	PauseAnchor string `yaml:"pause_anchor"`
	// LogLevel is the minimum level of log messages.
	LogLevel string `yaml:"log_level"`
	// Tone configures the audible alarm.
	Tone Tone `yaml:"tone"`
}

// Tone configures the audio sink.
type Tone struct {
	// File is a WAV file played when the alarm fires.
	File string `yaml:"file"`
	// URL is where `alarm-clock tone fetch` downloads the WAV file from.
	URL string `yaml:"url"`
	// SHA512 is the optional base64 checksum of the downloaded file.
	SHA512 string `yaml:"sha512"`
	// Duration is how long the tone plays before it stops on its own.
	Duration time.Duration `yaml:"duration"`
	// Frequency is the pitch in hertz of the synthesised beep used when File does not exist.
	Frequency int `yaml:"frequency"`
	// Disabled mutes the alarm.
	Disabled bool `yaml:"disabled"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "alarm-clock-settings.yaml"

	// DefaultHistoryFilename is the default filename for the outcome history.
	DefaultHistoryFilename = "alarm-clock-history.yaml"

	// DefaultToneFilename is the default filename of the alarm tone.
	DefaultToneFilename = "alarm-clock-tone.wav"

	// DefaultHistoryLimit is how many outcomes are kept by default.
	DefaultHistoryLimit = 100

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultToneDuration is how long the tone plays by default.
	DefaultToneDuration = 5 * time.Second

	// DefaultToneFrequency is the pitch of the synthesised beep.
	DefaultToneFrequency = 880

	// DefaultFilePermissions is the default file permission for files written by the binaries.
	DefaultFilePermissions = 0o600

	// NotifierDesktop shows desktop notifications.
	NotifierDesktop = "desktop"
	// NotifierLog writes notifications to the log.
	NotifierLog = "log"
	// NotifierNone discards notifications.
	NotifierNone = "none"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errServerSocketRequired is returned when server address is missing.
	errServerSocketRequired = errors.New("server address must be provided")
	// errUnknownNotifier is returned for notifier names other than desktop, log or none.
	errUnknownNotifier = errors.New("unknown notifier")
	// errNegativeValue is returned for negative limits and durations.
	errNegativeValue = errors.New("value must not be negative")
)

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings and fills in defaults.
//
//nolint:cyclop // A flat list of independent field checks.
func Validate(settings *Config) error {
	if settings.ServerAddress == "" {
		return errServerSocketRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", settings.ServerAddress); err != nil {
		return fmt.Errorf("invalid server socket: %w", err)
	}

	if settings.Timeout <= 0 {
		settings.Timeout = DefaultTimeout
	}

	if settings.HistoryFile == "" {
		settings.HistoryFile = DefaultHistoryFilename
	}

	switch {
	case settings.HistoryLimit < 0:
		return fmt.Errorf("history limit %d: %w", settings.HistoryLimit, errNegativeValue)
	case settings.HistoryLimit == 0:
		settings.HistoryLimit = DefaultHistoryLimit
	}

	settings.Notifier = strings.ToLower(strings.TrimSpace(settings.Notifier))
	switch settings.Notifier {
	case "":
		settings.Notifier = NotifierDesktop
	case NotifierDesktop, NotifierLog, NotifierNone:
	default:
		return fmt.Errorf("%q: %w", settings.Notifier, errUnknownNotifier)
	}

	if _, err := alarm.ParsePauseAnchor(settings.PauseAnchor); err != nil {
		return fmt.Errorf("invalid pause anchor: %w", err)
	}

	return validateTone(&settings.Tone)
}

// validateTone checks the tone section and fills in its defaults.
func validateTone(tone *Tone) error {
	if tone.File == "" {
		tone.File = DefaultToneFilename
	}

	switch {
	case tone.Duration < 0:
		return fmt.Errorf("tone duration %s: %w", tone.Duration, errNegativeValue)
	case tone.Duration == 0:
		tone.Duration = DefaultToneDuration
	}

	switch {
	case tone.Frequency < 0:
		return fmt.Errorf("tone frequency %d: %w", tone.Frequency, errNegativeValue)
	case tone.Frequency == 0:
		tone.Frequency = DefaultToneFrequency
	}

	if tone.URL != "" {
		if _, err := url.ParseRequestURI(tone.URL); err != nil {
			return fmt.Errorf("invalid tone URL: %w", err)
		}
	}

	if tone.SHA512 != "" {
		if _, err := base64.StdEncoding.DecodeString(tone.SHA512); err != nil {
			return fmt.Errorf("invalid tone checksum: %w", err)
		}
	}

	return nil
}

// Anchor returns the parsed default pause anchor. Validate has already checked it.
func (c *Config) Anchor() alarm.PauseAnchor {
	anchor, err := alarm.ParsePauseAnchor(c.PauseAnchor)
	if err != nil {
		return alarm.AnchorArm
	}

	return anchor
}
