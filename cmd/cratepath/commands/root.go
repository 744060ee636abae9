// Package commands implements the CLI commands for cratepath.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cratepath/internal/app"
	"go.trai.ch/cratepath/internal/build"
)

// CLI represents the command line interface for cratepath.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cratepath",
		Short:         "Find the Cargo.toml of a package in the current cargo project",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("dir", "C", "", "Run cargo in this directory and read cratepath.yaml from it")
	flags.String("cargo", "", "Path to the cargo executable")
	flags.String("manifest-path", "", "Path to the Cargo.toml passed to cargo metadata")
	flags.String("metadata-file", "", "Read cargo metadata JSON from this file instead of running cargo")
	flags.Bool("no-deps", false, "Only report workspace members")
	flags.Bool("offline", false, "Run cargo without accessing the network")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newDescribeCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetVerboseHook sets up a PersistentPreRun function that reads the verbose
// flag and calls fn with its value.
func (c *CLI) SetVerboseHook(fn func(bool)) {
	c.rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return err
		}
		fn(verbose)
		return nil
	}
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output and cobra's error output.
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)
}

func options(cmd *cobra.Command) app.Options {
	flags := cmd.Flags()
	dir, _ := flags.GetString("dir")
	cargo, _ := flags.GetString("cargo")
	manifestPath, _ := flags.GetString("manifest-path")
	metadataFile, _ := flags.GetString("metadata-file")
	noDeps, _ := flags.GetBool("no-deps")
	offline, _ := flags.GetBool("offline")
	return app.Options{
		Dir:          dir,
		Cargo:        cargo,
		ManifestPath: manifestPath,
		MetadataFile: metadataFile,
		NoDeps:       noDeps,
		Offline:      offline,
	}
}
