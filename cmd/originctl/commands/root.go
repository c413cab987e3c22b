// Package commands implements the CLI commands for originctl.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/origin/internal/app"
	"go.trai.ch/origin/internal/build"
	"go.trai.ch/origin/internal/core/domain"
)

// CLI represents the command line interface for originctl.
type CLI struct {
	app      *app.App
	rootCmd  *cobra.Command
	settings *domain.Settings
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "originctl",
		Short:         "Inspect and edit deployment origin files",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("file", "f", "", "Origin file to operate on (default from originctl.yaml)")
	rootCmd.PersistentFlags().StringP("chdir", "C", ".", "Directory to read originctl.yaml from")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		dir, err := cmd.Flags().GetString("chdir")
		if err != nil {
			return err
		}
		settings, err := c.app.Settings(dir)
		if err != nil {
			return err
		}
		c.settings = settings
		return nil
	}

	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newUninstallCmd())
	rootCmd.AddCommand(c.newOverrideCmd())
	rootCmd.AddCommand(c.newRebaseCmd())
	rootCmd.AddCommand(c.newPinCmd())
	rootCmd.AddCommand(c.newUnpinCmd())
	rootCmd.AddCommand(c.newInitramfsCmd())
	rootCmd.AddCommand(c.newInitramfsEtcCmd())
	rootCmd.AddCommand(c.newCliwrapCmd())
	rootCmd.AddCommand(c.newSeedCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

// originPath returns the --file flag, falling back to the configured origin.
func (c *CLI) originPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		return path
	}
	return c.settings.Origin
}

// report prints the outcome of an edit.
func report(cmd *cobra.Command, changed bool, err error) error {
	if err != nil {
		return err
	}
	if !changed {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No changes.")
	}
	return nil
}
