// Package commands implements the CLI commands for pixi-outdated.
package commands

import (
	"context"
	"io"

	"github.com/benmoss/pixi-outdated/internal/app"
	"github.com/benmoss/pixi-outdated/internal/build"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for pixi-outdated.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pixi-outdated [packages...]",
		Short:         "Show outdated dependencies of a pixi workspace",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.Flags().StringP("manifest-path", "f", "", "Path to the pixi.toml manifest")
	rootCmd.Flags().StringP("environment", "e", "", "Environment to check (defaults to the default environment)")
	rootCmd.Flags().StringSliceP("platform", "p", nil, "Platform to check (repeatable, defaults to the workspace platforms)")
	rootCmd.Flags().BoolP("explicit", "x", false, "Only check explicitly requested dependencies")
	rootCmd.Flags().BoolP("json", "j", false, "Emit the report as JSON")
	rootCmd.Flags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		manifest, _ := cmd.Flags().GetString("manifest-path")
		environment, _ := cmd.Flags().GetString("environment")
		platforms, _ := cmd.Flags().GetStringSlice("platform")
		explicit, _ := cmd.Flags().GetBool("explicit")
		jsonOut, _ := cmd.Flags().GetBool("json")
		verbose, _ := cmd.Flags().GetBool("verbose")

		if len(args) == 0 {
			args = nil
		}

		return c.app.Run(cmd.Context(), app.Options{
			Manifest:    manifest,
			Environment: environment,
			Platforms:   platforms,
			Explicit:    explicit,
			JSON:        jsonOut,
			Verbose:     verbose,
			Packages:    args,
		})
	}

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

// SetOut sets the output writer for the root command. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}
