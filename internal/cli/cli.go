package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/nasaimager/internal/app"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	root *cobra.Command

	configPath string
	dark       bool
	logLevel   string
	noColor    bool
}

// NewApp creates the command tree.
func NewApp() *App {
	a := &App{}

	a.root = &cobra.Command{
		Use:   "nasaimager",
		Short: "Browse the NASA image library from your terminal",
		Long: `nasaimager searches NASA's public image and video library.

Run without a subcommand to open the interactive browser: type a query,
pick an image from the grid and press enter to get its full-resolution URL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), a.options(cmd))
		},
	}

	flags := a.root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (default ~/.config/nasaimager/config.toml)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	a.root.Flags().BoolVar(&a.dark, "dark", false, "Start in dark mode")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.searchCmd())
	a.root.AddCommand(a.assetCmd())
	a.root.AddCommand(a.logsCmd())
	a.root.AddCommand(a.cacheCmd())

	return a
}

// options maps global flags onto app.Options.
func (a *App) options(cmd *cobra.Command) app.Options {
	opts := app.Options{
		ConfigPath: a.configPath,
		UserAgent:  "nasaimager/" + Version,
		LogLevel:   a.logLevel,
	}
	if f := cmd.Flags().Lookup("dark"); f != nil && f.Changed {
		dark := a.dark
		opts.Dark = &dark
	}
	return opts
}

// open builds the shared environment for one-shot commands.
func (a *App) open(cmd *cobra.Command) (*app.Env, error) {
	return app.Open(a.options(cmd))
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nasaimager %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	return a.root.ExecuteContext(ctx)
}
