// Package commands implements the CLI commands for deco.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/deco/internal/adapters/esbuild"
	"go.trai.ch/deco/internal/app"
	"go.trai.ch/deco/internal/build"
)

// CLI represents the command line interface for deco.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Scan(ctx context.Context, patterns []string, opts app.ScanOptions) (app.Summary, error)
	Build(ctx context.Context, entryPoints []string, opts app.BuildOptions) (esbuild.BundleReport, error)
	Watch(ctx context.Context, patterns []string, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "deco",
		Short:         "Transform only the TypeScript files that use decorators, and remember the answer",
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

	addRunFlags(rootCmd)

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newScanCmd())
	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newWatchCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// addRunFlags registers the flags shared by every processing command.
func addRunFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringP("dir", "C", ".", "Working directory for configuration discovery and relative paths")
	flags.BoolP("no-cache", "n", false, "Disable the result cache")
	flags.Bool("cache", false, "Enable the result cache")
	flags.String("cache-size", "", "Result cache budget in megabytes, or a size such as 64MB")
	flags.BoolP("force", "f", false, "Scan even when emitDecoratorMetadata is not enabled")
	flags.Bool("tsx", false, "Include .tsx files")
	flags.String("tsconfig", "", "Path of the tsconfig.json to inspect")
	flags.IntP("parallelism", "j", 0, "Number of files processed at once (default: number of CPUs)")
	flags.Bool("json", false, "Log in JSON format")
	flags.BoolP("verbose", "V", false, "Enable debug logging")
}

// runOptions reads the shared flags.
func runOptions(cmd *cobra.Command) app.RunOptions {
	flags := cmd.Flags()
	dir, _ := flags.GetString("dir")
	noCache, _ := flags.GetBool("no-cache")
	cache, _ := flags.GetBool("cache")
	cacheSize, _ := flags.GetString("cache-size")
	force, _ := flags.GetBool("force")
	tsx, _ := flags.GetBool("tsx")
	tsconfig, _ := flags.GetString("tsconfig")
	parallelism, _ := flags.GetInt("parallelism")
	jsonMode, _ := flags.GetBool("json")
	verbose, _ := flags.GetBool("verbose")

	return app.RunOptions{
		Dir:         dir,
		NoCache:     noCache,
		Cache:       cache,
		CacheSize:   cacheSize,
		Force:       force,
		TSX:         tsx,
		Tsconfig:    tsconfig,
		Parallelism: parallelism,
		JSON:        jsonMode,
		Verbose:     verbose,
	}
}
