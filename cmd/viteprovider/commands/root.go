// Package commands implements the viteprovider CLI.
package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/viteprovider"
	"github.com/3-lines-studio/viteprovider/internal/adapters/cli"
	"github.com/3-lines-studio/viteprovider/internal/adapters/config"
	"github.com/3-lines-studio/viteprovider/internal/adapters/env"
	"github.com/3-lines-studio/viteprovider/internal/adapters/fs"
	"github.com/3-lines-studio/viteprovider/internal/adapters/logger"
	"github.com/3-lines-studio/viteprovider/internal/core"
)

// CLI represents the command line interface.
type CLI struct {
	rootCmd   *cobra.Command
	overrides config.Overrides
	verbose   bool

	out     *cli.Output
	errOut  io.Writer
	environ viteprovider.Environment
}

func New() *CLI {
	rootCmd := &cobra.Command{
		Use:           "viteprovider",
		Short:         "Inspect Vite manifests and resolve page assets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "viteprovider.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log cache and resolution details to stderr")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable coloured output")

	c := &CLI{
		rootCmd: rootCmd,
		out:     cli.NewOutput(),
		environ: env.OS{},
	}
	c.overrides.Register(rootCmd.PersistentFlags())

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		noColor, err := cmd.Flags().GetBool("no-color")
		if err != nil {
			return err
		}
		if noColor {
			c.out.DisableColors()
		}
		return nil
	}

	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newDevURLCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects all command output. Colours are disabled.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
	c.out = cli.NewWriterOutput(out, errOut)
	c.errOut = errOut
}

// SetEnvironment replaces the process environment. Used for testing.
func (c *CLI) SetEnvironment(environ viteprovider.Environment) {
	c.environ = environ
}

func (c *CLI) loadConfig(cmd *cobra.Command) (core.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return core.Config{}, err
	}

	cfg, err := config.LoadOptional(path)
	if err != nil {
		return core.Config{}, err
	}
	return c.overrides.Apply(cfg), nil
}

func (c *CLI) newLogger(cmd *cobra.Command) viteprovider.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return logger.Discard()
	}

	l := logger.New(slog.LevelDebug)
	if c.errOut != nil {
		l.SetOutput(c.errOut)
	}
	return l
}

func (c *CLI) provider(cmd *cobra.Command) (*viteprovider.Provider, core.Config, error) {
	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return nil, core.Config{}, err
	}

	p, err := viteprovider.New(
		viteprovider.WithConfig(cfg),
		viteprovider.WithFileSystem(fs.NewOSFileSystem("")),
		viteprovider.WithEnvironment(c.environ),
		viteprovider.WithLogger(c.newLogger(cmd)),
	)
	if err != nil {
		return nil, core.Config{}, err
	}
	return p, cfg, nil
}
