// Package commands implements the CLI commands for requiregen.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/requiregen/internal/app"
	"go.trai.ch/requiregen/internal/build"
	"go.trai.ch/requiregen/internal/core/ports"
)

// Application represents the application logic interface.
type Application interface {
	Generate(ctx context.Context, opts app.GenerateOptions) error
	Watch(ctx context.Context, opts app.GenerateOptions) error
	Capture(ctx context.Context, path string) error
	Diff(ctx context.Context, opts app.DiffOptions, w io.Writer) error
	Clean(ctx context.Context) error
	SetConfigPath(path string)
	EnableSpanLogging() func(context.Context) error
}

// jsonSwitcher is implemented by loggers that can emit JSON.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// verboseSwitcher is implemented by loggers that can print full error chains.
type verboseSwitcher interface {
	SetVerbose(enable bool)
}

// CLI represents the command line interface for requiregen.
type CLI struct {
	app      Application
	logger   ports.Logger
	rootCmd  *cobra.Command
	shutdown func(context.Context) error
}

// New creates a new CLI instance with the given app and logger.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "requiregen",
		Short:         "Turn dependency manifest changes into a reproducible update script",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to requiregen.yaml (default: discovered from the working directory)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log every pipeline stage and print full error chains")

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = c.applyGlobalFlags

	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newDiffCmd())
	rootCmd.AddCommand(c.newCaptureCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) applyGlobalFlags(cmd *cobra.Command, _ []string) {
	configPath, _ := cmd.Flags().GetString("config")
	logJSON, _ := cmd.Flags().GetBool("log-json")
	verbose, _ := cmd.Flags().GetBool("verbose")

	c.app.SetConfigPath(configPath)
	if s, ok := c.logger.(jsonSwitcher); ok {
		s.SetJSON(logJSON)
	}
	if s, ok := c.logger.(verboseSwitcher); ok {
		s.SetVerbose(verbose)
	}
	if verbose {
		c.shutdown = c.app.EnableSpanLogging()
	}
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	if c.shutdown != nil {
		_ = c.shutdown(context.WithoutCancel(ctx))
	}
	return err
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
