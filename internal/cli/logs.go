package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/nasaimager/internal/config"
	"github.com/five82/nasaimager/internal/logtail"
)

func (a *App) logsCmd() *cobra.Command {
	var (
		lines int
		level string
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the tail of the nasaimager log",
		Example: `  nasaimager logs
  nasaimager logs -n 200 --level warn`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			tail, err := logtail.Read(cfg.Log.Path, lines)
			if err != nil {
				return err
			}
			tail = logtail.Filter(tail, level)

			out := cmd.OutOrStdout()
			if len(tail) == 0 {
				fmt.Fprintf(out, "No log entries in %s\n", cfg.Log.Path)
				return nil
			}
			for _, line := range logtail.ColorizeLines(tail) {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of lines to show (0 for all)")
	cmd.Flags().StringVar(&level, "level", "debug", "Minimum level to show (debug, info, warn, error)")

	return cmd
}
