package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tartampluch/birthday-reminder/internal/config"
	"github.com/tartampluch/birthday-reminder/internal/engine"
	"github.com/tartampluch/birthday-reminder/internal/ui"
)

// cli holds the flag values and the dependencies of one invocation.
// Tests replace the dependencies to run the command headless.
type cli struct {
	file      string
	daysAhead int
	daysPast  int
	notifier  string
	envFile   string
	debug     bool
	version   bool

	stdout      io.Writer
	stderr      io.Writer
	lookupEnv   func(string) (string, bool)
	logPath     func() (string, error)
	clock       engine.Clock
	newNotifier func(kind string, out io.Writer) (ui.Notifier, error)

	logCloser io.Closer
}

func newCLI() *cli {
	return &cli{
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		lookupEnv:   os.LookupEnv,
		logPath:     getLogFilePath,
		clock:       engine.RealClock{},
		newNotifier: ui.NewNotifier,
	}
}

// command builds the root cobra command bound to c.
func (c *cli) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:           config.CommandName,
		Short:         config.CmdShort,
		Long:          config.CmdLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.run,
	}

	f := cmd.Flags()
	f.StringVarP(&c.file, config.FlagFile, config.FlagFileShort, "", config.FlagDescFile)
	f.IntVar(&c.daysAhead, config.FlagDaysAhead, config.DefaultDaysInAdvance, config.FlagDescDaysAhead)
	f.IntVar(&c.daysPast, config.FlagDaysPast, config.DefaultDaysInPast, config.FlagDescDaysPast)
	f.StringVar(&c.notifier, config.FlagNotifier, config.DefaultNotifier, config.FlagDescNotifier)
	f.StringVar(&c.envFile, config.FlagEnvFile, config.DefaultEnvFile, config.FlagDescEnvFile)
	f.BoolVar(&c.debug, config.FlagDebug, false, config.FlagDescDebug)
	f.BoolVar(&c.version, config.FlagVersion, false, config.FlagDescVersion)

	cmd.SetOut(c.stdout)
	cmd.SetErr(c.stderr)
	return cmd
}

// run executes Loader -> Evaluator -> Presenter once.
func (c *cli) run(cmd *cobra.Command, _ []string) error {
	if c.version {
		printVersion(c.stdout)
		return nil
	}

	s, err := c.resolveSettings(cmd)
	if err != nil {
		return err
	}

	c.logCloser = setupLogging(s.LogLevel, c.debug, c.stderr, c.logPath)
	logStartupInfo(s)

	notifier, err := c.newNotifier(s.Notifier, c.stdout)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	gen := engine.NewGenerator(s)
	gen.Clock = c.clock

	results, err := gen.Run(ctx, s.FilePath)
	if err != nil {
		return err
	}

	if err := ui.NewPresenter(notifier).Present(ctx, results); err != nil {
		return err
	}

	slog.Debug(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return nil
}

// resolveSettings applies defaults, then the environment (after the dotenv
// file), then the flags the user actually set.
func (c *cli) resolveSettings(cmd *cobra.Command) (config.Settings, error) {
	flags := cmd.Flags()

	if err := config.LoadEnvFile(c.envFile, flags.Changed(config.FlagEnvFile)); err != nil {
		return config.Settings{}, err
	}

	s := config.Defaults()
	if err := s.ApplyEnv(c.lookupEnv); err != nil {
		return config.Settings{}, err
	}

	if flags.Changed(config.FlagFile) {
		s.FilePath = c.file
	}
	if flags.Changed(config.FlagDaysAhead) {
		s.DaysInAdvance = c.daysAhead
	}
	if flags.Changed(config.FlagDaysPast) {
		s.DaysInPast = c.daysPast
	}
	if flags.Changed(config.FlagNotifier) {
		s.Notifier = c.notifier
	}
	if c.debug {
		s.LogLevel = slog.LevelDebug
	}

	return s, s.Validate()
}

// closeLog closes the log file opened by setupLogging, if any.
func (c *cli) closeLog() {
	if c.logCloser != nil {
		_ = c.logCloser.Close() // Best effort close
	}
}
