package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/tartampluch/birthday-reminder/internal/config"
	"github.com/tartampluch/birthday-reminder/internal/logging"
)

func main() {
	os.Exit(runMain())
}

// runMain runs the command once and maps its outcome to an exit code.
// The log file is closed before main exits.
func runMain() int {
	cli := newCLI()
	defer cli.closeLog()

	// Create a root context that cancels on SIGINT (Ctrl+C) or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.command().ExecuteContext(ctx); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}
	return config.ExitCodeSuccess
}

// printVersion outputs the build information.
func printVersion(w io.Writer) {
	_, _ = fmt.Fprintf(w, config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo(s config.Settings) {
	slog.Debug(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyCommit, config.Commit),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
	slog.Debug(config.MsgSettings,
		config.LogKeyComponent, config.CompConfig,
		config.LogKeyFile, s.FilePath,
		config.LogKeyAhead, s.DaysInAdvance,
		config.LogKeyPast, s.DaysInPast,
		config.LogKeyNotifier, s.Notifier,
	)
}

// setupLogging configures the default slog logger.
// Diagnostics go to console (stderr) and, when logPath yields a usable
// location, to a JSON log file. Stdout is left to the reminder itself.
func setupLogging(level slog.Level, addSource bool, console io.Writer, logPath func() (string, error)) io.Closer {
	var logFile *os.File

	if logPath != nil {
		if path, err := logPath(); err == nil {
			// O_TRUNC resets logs on every run to prevent indefinite growth.
			f, err := os.OpenFile(path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
			if err == nil {
				logFile = f
			} else {
				_, _ = fmt.Fprintf(console, config.MsgLogWarning, config.ErrLogFile, path, err)
			}
		}
	}

	opts := logging.Options{
		Level:     level,
		AddSource: addSource,
		Console:   console,
	}
	if logFile != nil {
		opts.File = logFile
	}
	slog.SetDefault(slog.New(logging.New(opts)))

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath returns <user cache dir>/<AppID>/app.log, creating the
// directory owner-only if needed.
func getLogFilePath() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	dir := filepath.Join(base, config.AppID)
	if err := os.MkdirAll(dir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}
	return filepath.Join(dir, config.LogFileName), nil
}
