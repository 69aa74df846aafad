package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quizbank/internal/config"
	"quizbank/internal/logging"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageError marks failures caused by how the command was invoked. A nil err
// means usage was already printed.
type usageError struct {
	err error
}

func (e usageError) Error() string {
	if e.err == nil {
		return "usage"
	}
	return e.err.Error()
}

func (e usageError) Unwrap() error {
	return e.err
}

// app carries the writers and global flags shared by every command.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	catalog    string
	logLevel   string
	logFormat  string

	logger *zap.Logger
}

// Run executes the quizbank command line and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, logger: zap.NewNop()}
	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(context.Background())
	defer func() { _ = a.logger.Sync() }()
	if err == nil {
		return ExitOK
	}

	var usageErr usageError
	if errors.As(err, &usageErr) {
		if usageErr.err != nil {
			fmt.Fprintf(stderr, "%v\n\n%s", usageErr.err, cmd.UsageString())
		}
		return ExitUsage
	}
	a.logger.Debug("command failed", zap.String("command", cmd.Name()), zap.Error(err))
	fmt.Fprintf(stderr, "%s failed:\n%v\n", failureTitle(cmd.Name()), err)
	return ExitError
}

func (a *app) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "quizbank",
		Short:         "Seed and inspect a YAML question catalog",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := logging.New(logging.Options{Level: a.logLevel, Format: a.logFormat}, a.stderr)
			if err != nil {
				return usageError{err: err}
			}
			a.logger = logger
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return usageError{}
			}
			return usageError{err: fmt.Errorf("unknown command %q", args[0])}
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to config file (default: search for .quizbank/config.yml)")
	flags.StringVar(&a.catalog, "catalog", "", "Catalog file (overrides the config file)")
	flags.StringVar(&a.logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	flags.StringVar(&a.logFormat, "log-format", logging.FormatConsole, "Log format (console|json)")

	root.AddCommand(
		a.newSeedCommand(),
		a.newValidateCommand(),
		a.newListCommand(),
		a.newBatchesCommand(),
		a.newInitCommand(),
	)
	return root
}

// settings resolves config and overrides relative to the working directory.
func (a *app) settings(batchOverride string) (config.Settings, error) {
	wd, err := os.Getwd()
	if err != nil {
		return config.Settings{}, fmt.Errorf("get working directory: %w", err)
	}
	return config.Resolve(wd, config.Overrides{
		ConfigPath: a.configPath,
		Catalog:    a.catalog,
		Batch:      batchOverride,
	})
}

// noArgs rejects positional arguments as a usage error.
func noArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageError{err: fmt.Errorf("unexpected arguments: %s", strings.Join(args, " "))}
	}
	return nil
}

func failureTitle(name string) string {
	if name == "" {
		return "Command"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
