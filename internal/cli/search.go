package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
)

func (a *App) searchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Search NASA images and print the matches",
		Long: `Search the NASA image library and print one entry per match, in the
order the API returns them. All arguments are joined into one query.`,
		Example: `  nasaimager search apollo 11
  nasaimager search "pillars of creation" --limit 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.open(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = env.Close() }()

			query := strings.Join(args, " ")
			images, err := env.Client.Search(cmd.Context(), query)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(images) == 0 {
				fmt.Fprintln(out, "No images found.")
				return nil
			}

			total := len(images)
			if limit > 0 && limit < total {
				images = images[:limit]
			}
			width := termWidth()
			for i, img := range images {
				fmt.Fprintf(out, "%2d. %s\n", i+1, formatTitle(ansi.Truncate(img.Title, width-4, "…")))
				fmt.Fprintf(out, "    %s  %s\n", formatAccent(img.AssetID), formatMuted("by "+img.Photographer))
				if img.ThumbnailURL != "" {
					fmt.Fprintf(out, "    %s\n", formatMuted(ansi.Truncate(img.ThumbnailURL, width-4, "…")))
				}
			}
			if len(images) < total {
				fmt.Fprintln(out, formatMuted(fmt.Sprintf("… %d more (use --limit 0 for all)", total-len(images))))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum results to print (0 for all)")

	return cmd
}
