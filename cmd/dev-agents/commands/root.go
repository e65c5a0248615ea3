// Package commands implements the CLI commands for dev-agents.
package commands

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/devagents/cmd"
	"github.com/thoreinstein/devagents/internal/cli/prompt"
	"github.com/thoreinstein/devagents/internal/config"
	"github.com/thoreinstein/devagents/internal/errors"
	"github.com/thoreinstein/devagents/internal/install"
	"github.com/thoreinstein/devagents/internal/logging"
	"github.com/thoreinstein/devagents/internal/paths"
	"github.com/thoreinstein/devagents/internal/templates"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// openLogFile is the --log-file handle of the running command.
var openLogFile *os.File

// configFile holds the value of the --config flag.
var configFile string

// cfg is the loaded configuration; configLoadErr holds any error from loading it.
var (
	cfg           *config.Config
	configLoadErr error
)

// getwd resolves the project directory. Tests replace it.
var getwd = os.Getwd

// stdinIsTerminal reports whether the command reads from a terminal. Tests
// replace it.
var stdinIsTerminal = func(cmd *cobra.Command) bool {
	return prompt.IsTerminal(cmd.InOrStdin())
}

func init() {
	cobra.OnInitialize(initConfig)
	cobra.OnFinalize(closeLogFile)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: <config home>/dev-agents/config.yaml)")

	rootCmd.Version = cmd.BuildInfo().Version
	rootCmd.SetVersionTemplate("dev-agents version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "dev-agents",
	Short: "AI-powered development commands for Claude Code",
	Long: `dev-agents installs slash commands, agent definitions, templates and
helper scripts for Claude Code into a project or into ~/.claude.

Run "dev-agents init" in a project to choose what to install, or
"dev-agents global" to make every bundled command available everywhere.`,
	Example: `  # Pick commands and components interactively
  dev-agents init

  # Install everything without prompting
  dev-agents init --all

  # Add a single command to the current project
  dev-agents add commit

  # Configure GitHub and Jira tokens
  dev-agents mcp

  See Also: dev-agents list, dev-agents examples`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"),
			"Drop either --quiet or --verbose")
	}

	format, err := logging.ParseFormat(logFormat)
	if err != nil {
		return errors.NewUserError(err, "Use --log-format text or --log-format json")
	}

	opts := logging.Options{
		Level:  logging.ResolveLevel(verbosity, quiet, os.LookupEnv),
		Format: format,
		Output: cmd.ErrOrStderr(),
	}

	closeLogFile()
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		openLogFile = f
		opts.File = f
	}

	logger := logging.New(opts)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

func closeLogFile() {
	if openLogFile != nil {
		_ = openLogFile.Close()
		openLogFile = nil
	}
}

// checkConfig reports a configuration load error. Help and version work
// without a valid configuration.
func checkConfig(cmd *cobra.Command) error {
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

// currentConfig returns the loaded configuration, or defaults when
// configuration loading was skipped.
func currentConfig() *config.Config {
	if cfg != nil {
		return cfg
	}
	return &config.Config{}
}

// openStore opens the template store named by the configuration.
func openStore() (fs.FS, error) {
	store, err := templates.Open(currentConfig().TemplatesDir)
	if err != nil {
		return nil, errors.NewConfigError(err)
	}
	return store, nil
}

// resolveTarget returns the install target of this invocation.
func resolveTarget(global bool) (install.Target, error) {
	if global {
		dir := currentConfig().GlobalDir
		if dir == "" {
			var err error
			if dir, err = paths.DefaultGlobalDir(); err != nil {
				return install.Target{}, errors.NewInstallError(err, "Set global_dir in the config file or DEV_AGENTS_GLOBAL_DIR")
			}
		}
		return install.GlobalTarget(dir), nil
	}

	cwd, err := getwd()
	if err != nil {
		return install.Target{}, errors.NewInstallError(errors.Wrap(err, "resolving current directory"), "")
	}
	return install.ProjectTarget(cwd), nil
}

// newTerminal returns the prompt bound to the command's streams. On a
// terminal, Ctrl-C cancels the waiting prompt instead of killing the
// process; the returned stop function releases the signal.
func newTerminal(cmd *cobra.Command) (*prompt.Terminal, func()) {
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	if !stdinIsTerminal(cmd) {
		return prompt.NewTerminalWithIO(in, out), func() {}
	}

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	return prompt.NewTerminalWithIO(in, out, prompt.WithInterrupts(interrupts)), func() {
		signal.Stop(interrupts)
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
