package config

import (
	"io/fs"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName       = "Birthday Reminder"
	AppID         = "com.github.tartampluch.birthday-reminder"
	AppDirName    = "birthday-reminder"
	CommandName   = "birthday-reminder"
	LogFileName   = "app.log"
	DefaultFile   = "birthdays.csv"
	AlertTitle    = "Birthday Reminders"
	MessageHeader = "Birthdays:"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagFile      = "file"
	FlagFileShort = "f"
	FlagDaysAhead = "days-ahead"
	FlagDaysPast  = "days-past"
	FlagNotifier  = "notifier"
	FlagEnvFile   = "env-file"
	FlagVersion   = "version"
	FlagDebug     = "debug"

	FlagDescFile      = "Path to the ';'-separated birthday file (name;DD.MM.YYYY)"
	FlagDescDaysAhead = "Show birthdays up to this many days ahead"
	FlagDescDaysPast  = "Show birthdays that happened up to this many days ago"
	FlagDescNotifier  = "How to show reminders: dialog or console"
	FlagDescEnvFile   = "Optional dotenv file read before the environment"
	FlagDescVersion   = "Show application version and exit"
	FlagDescDebug     = "Enable debug logging"

	CmdShort         = "Show a reminder for upcoming and recent birthdays"
	CmdLong          = "birthday-reminder reads a list of names and birth dates and shows\nthe birthdays around today in a single desktop alert."
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Environment Variables
// -----------------------------------------------------------------------------

const (
	EnvFile      = "BIRTHDAY_FILE"
	EnvDaysAhead = "BIRTHDAY_DAYS_AHEAD"
	EnvDaysPast  = "BIRTHDAY_DAYS_PAST"
	EnvNotifier  = "BIRTHDAY_NOTIFIER"
	EnvLogLevel  = "LOG_LEVEL"

	DefaultEnvFile = ".env"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultDaysInAdvance = 30
	DefaultDaysInPast    = 5

	NotifierDialog  = "dialog"
	NotifierConsole = "console"
	DefaultNotifier = NotifierDialog
)

// SupportedNotifiers lists the accepted values for FlagNotifier.
var SupportedNotifiers = []string{NotifierDialog, NotifierConsole}

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

const (
	// FieldDelimiter separates name and date in the input file.
	FieldDelimiter = ';'

	// MinFields is the number of fields a row needs to be considered.
	MinFields = 2

	// DateFormatInput is the fixed DD.MM.YYYY layout used for input and display.
	DateFormatInput = "02.01.2006"

	HoursPerDay = 24
)

// -----------------------------------------------------------------------------
// Reminder Messages
// -----------------------------------------------------------------------------

const (
	FormatReminderLine = "%s: %s (%s)"
	FormatStatusAhead  = "in %d days"
	FormatStatusPast   = "%d days ago - Birthday is in the past"
	StatusToday        = "TODAY - HAPPY BIRTHDAY!!!!"
	ParagraphSeparator = "\n\n"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrSourceUnavailable = "birthday source unavailable"
	ErrSourceRead        = "failed to read birthday source"
	ErrInvalidSettings   = "invalid settings"
	ErrPathEmpty         = "birthday file path is empty"
	ErrNegativeWindow    = "day window must not be negative"
	ErrInvalidNumber     = "value is not a whole number"
	ErrUnknownNotifier   = "unknown notifier"
	ErrNotifierMissing   = "notifier is not initialized"
	ErrNotifyFailed      = "failed to show reminder"
	ErrDialogDriver      = "dialog driver failed"
	ErrEnvFile           = "failed to load env file"
	ErrLogFile           = "failed to open log file"
	ErrCacheDir          = "could not determine user cache dir"
	ErrCreateDir         = "could not create app cache dir"
	ErrAppFailed         = "application failed unexpectedly"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application finished"
	MsgSettings      = "Settings resolved"
	MsgLoadStarted   = "Loading birthdays"
	MsgLoadFinished  = "Birthdays loaded"
	MsgLoadDone      = "Load finished"
	MsgSkippedShort  = "Skipping row with too few fields"
	MsgSkippedRow    = "Skipping malformed row"
	MsgSkippedDate   = "Unable to parse date, skipping entry"
	MsgEvaluated     = "Birthdays evaluated"
	MsgBirthdayToday = "Birthday found today"
	MsgRunFinished   = "Run finished"
	MsgNothingToShow = "No birthdays in range, nothing to show"
	MsgShowing       = "Showing reminder"
	MsgDialogClosed  = "Reminder dismissed"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyName      = "name"
	LogKeyValue     = "value"
	LogKeyLine      = "line"
	LogKeyFields    = "fields"
	LogKeyRows      = "rows"
	LogKeyEntries   = "entries"
	LogKeySkipped   = "skipped"
	LogKeyMatches   = "matches"
	LogKeyToday     = "today"
	LogKeyAhead     = "days_ahead"
	LogKeyPast      = "days_past"
	LogKeyNotifier  = "notifier"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain      = "main"
	CompConfig    = "config"
	CompLoader    = "loader"
	CompEvaluator = "evaluator"
	CompPresenter = "presenter"
	CompNotifier  = "notifier"
)

// -----------------------------------------------------------------------------
// Dialog Layout
// -----------------------------------------------------------------------------

const (
	DialogWindowWidth  = 420
	DialogWindowHeight = 320
)
