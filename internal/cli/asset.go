package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func (a *App) assetCmd() *cobra.Command {
	var copyURL bool

	cmd := &cobra.Command{
		Use:   "asset <id>",
		Short: "Print the full-resolution URL of an asset",
		Example: `  nasaimager asset as11-40-5874
  nasaimager asset as11-40-5874 --copy`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.open(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = env.Close() }()

			url, err := env.Client.Asset(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)

			if copyURL {
				if err := writeClipboard(url); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), formatOK("Copied to clipboard"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyURL, "copy", false, "Also copy the URL to the clipboard")

	return cmd
}
