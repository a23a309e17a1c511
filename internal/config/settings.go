package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrSettingsInvalid is wrapped by every error returned from ApplyEnv and Validate.
var ErrSettingsInvalid = errors.New(ErrInvalidSettings)

// Settings holds the runtime configuration resolved from defaults,
// the environment and command line flags.
type Settings struct {
	FilePath      string // Path to the ';'-separated birthday file
	DaysInAdvance int    // Upper bound of the window, inclusive
	DaysInPast    int    // Look-back bound of the window, inclusive
	Notifier      string // NotifierDialog or NotifierConsole
	LogLevel      slog.Level
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		FilePath:      DefaultFilePath(),
		DaysInAdvance: DefaultDaysInAdvance,
		DaysInPast:    DefaultDaysInPast,
		Notifier:      DefaultNotifier,
		LogLevel:      slog.LevelInfo,
	}
}

// DefaultFilePath returns <user config dir>/birthday-reminder/birthdays.csv,
// or birthdays.csv in the working directory when no config dir is known.
func DefaultFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return DefaultFile
	}
	return filepath.Join(dir, AppDirName, DefaultFile)
}

// LoadEnvFile loads a dotenv file into the process environment.
// Variables already set in the environment win over the file.
// A missing file is only an error when required is true.
func LoadEnvFile(path string, required bool) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%s %s: %w", ErrEnvFile, path, err)
	}
	return nil
}

// ApplyEnv overlays the values found through lookup (usually os.LookupEnv).
// Empty values are ignored.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvFile); ok && v != "" {
		s.FilePath = v
	}
	if v, ok := lookup(EnvDaysAhead); ok && v != "" {
		n, err := parseDays(EnvDaysAhead, v)
		if err != nil {
			return err
		}
		s.DaysInAdvance = n
	}
	if v, ok := lookup(EnvDaysPast); ok && v != "" {
		n, err := parseDays(EnvDaysPast, v)
		if err != nil {
			return err
		}
		s.DaysInPast = n
	}
	if v, ok := lookup(EnvNotifier); ok && v != "" {
		s.Notifier = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		s.LogLevel = ParseLogLevel(v)
	}
	return nil
}

// Validate reports the first setting that cannot be used.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.FilePath) == "" {
		return fmt.Errorf("%w: %s", ErrSettingsInvalid, ErrPathEmpty)
	}
	if s.DaysInAdvance < 0 {
		return fmt.Errorf("%w: %s: %s=%d", ErrSettingsInvalid, ErrNegativeWindow, FlagDaysAhead, s.DaysInAdvance)
	}
	if s.DaysInPast < 0 {
		return fmt.Errorf("%w: %s: %s=%d", ErrSettingsInvalid, ErrNegativeWindow, FlagDaysPast, s.DaysInPast)
	}
	if !slices.Contains(SupportedNotifiers, s.Notifier) {
		return fmt.Errorf("%w: %s %q", ErrSettingsInvalid, ErrUnknownNotifier, s.Notifier)
	}
	return nil
}

// ParseLogLevel maps debug, warn and error to their slog levels; anything else is Info.
func ParseLogLevel(v string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseDays(key, v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %s", ErrSettingsInvalid, key, v, ErrInvalidNumber)
	}
	return n, nil
}
