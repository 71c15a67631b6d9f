package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/itemdesk/internal/draftfile"
	"github.com/idilsaglam/itemdesk/internal/drafts"
	"github.com/idilsaglam/itemdesk/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive entry and listing screen",
		Example: `  itemdesk tui
  itemdesk tui --file drafts.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows *drafts.RowSet
			if file != "" {
				var err error
				if rows, err = draftfile.Load(file, a.r.cfg.ImageMaxDim); err != nil {
					return fmt.Errorf("load drafts: %w", err)
				}
			}
			return runTUI(cmd.Context(), a.r, rows)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Start with the drafts in this JSON file")
	return cmd
}

func runTUI(ctx context.Context, r *runner, rows *drafts.RowSet) error {
	return tui.Run(ctx, r.controller(rows), tui.Options{
		Timeout:          r.cfg.Timeout,
		ImageMaxDim:      r.cfg.ImageMaxDim,
		PlaceholderImage: r.cfg.PlaceholderImage,
	})
}
