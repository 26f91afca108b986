package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) cacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the on-disk response cache",
	}
	cmd.AddCommand(a.cachePurgeCmd())
	return cmd
}

func (a *App) cachePurgeCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Remove expired (or all) cached responses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := a.open(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = env.Close() }()

			if env.Disk == nil {
				return errors.New("disk cache is disabled; set cache.path in the config")
			}
			removed, err := env.Disk.Purge(cmd.Context(), all)
			if err != nil {
				return err
			}
			left, err := env.Disk.Len(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d entries, %d left\n", formatOK("Removed"), removed, left)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Remove every entry, not only expired ones")

	return cmd
}
