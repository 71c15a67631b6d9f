package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/itemdesk/internal/attach"
	"github.com/idilsaglam/itemdesk/internal/controller"
	"github.com/idilsaglam/itemdesk/internal/draftfile"
	"github.com/idilsaglam/itemdesk/internal/drafts"
	"github.com/idilsaglam/itemdesk/internal/ui"
)

func newAddCmd(a *app) *cobra.Command {
	var (
		file   string
		image  string
		values = map[drafts.Field]*string{}
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save one item, or every draft in a JSON file",
		Long: `Save items to the backend, one request per draft, in order.

A failed draft does not stop the rest; the summary lists which rows failed.`,
		Example: `  itemdesk add --title Mug --quantity 2 --price 4.50 --date 2024-01-05 --image mug.jpg
  itemdesk add --file drafts.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fieldFlags := cmd.Flags().Changed("image")
			for f := range values {
				if cmd.Flags().Changed(string(f)) {
					fieldFlags = true
				}
			}
			if file != "" && fieldFlags {
				return errors.New("use either --file or the field flags, not both")
			}

			var rows *drafts.RowSet
			if file != "" {
				var err error
				if rows, err = draftfile.Load(file, a.r.cfg.ImageMaxDim); err != nil {
					return fmt.Errorf("load drafts: %w", err)
				}
			} else {
				rows = drafts.New()
				rows.Add()
				for _, f := range drafts.Fields {
					if !cmd.Flags().Changed(string(f)) {
						continue
					}
					if err := rows.Update(0, f, *values[f]); err != nil {
						return fmt.Errorf("--%s: %w", f, err)
					}
				}
				if image != "" {
					att, err := attach.Load(image, a.r.cfg.ImageMaxDim)
					if err != nil {
						return fmt.Errorf("--image: %w", err)
					}
					rows.AttachImage(0, att)
				}
				if d, _ := rows.At(0); d.Empty() {
					return errors.New("nothing to save: give at least one field flag or --file")
				}
			}
			if rows.Len() == 0 {
				return errors.New("nothing to save")
			}

			return submit(cmd, a.r.controller(rows))
		},
	}

	for _, f := range drafts.Fields {
		values[f] = cmd.Flags().String(string(f), "", fieldUsage[f])
	}
	cmd.Flags().StringVar(&image, "image", "", "Image file to attach")
	cmd.Flags().StringVar(&file, "file", "", "JSON file with an array of drafts")
	return cmd
}

var fieldUsage = map[drafts.Field]string{
	drafts.FieldTitle:       "Item title",
	drafts.FieldDescription: "Item description (max 250 characters)",
	drafts.FieldQuantity:    "Quantity (default 0)",
	drafts.FieldPrice:       "Price (default 0)",
	drafts.FieldDate:        "Date, YYYY-MM-DD",
}

// submit saves every row, printing one line per row, then the summary.
func submit(cmd *cobra.Command, ctl *controller.Controller) error {
	out := cmd.OutOrStdout()
	total := ctl.Drafts().Len()

	rep, notices := ctl.Submit(cmd.Context(), func(o controller.RowOutcome) {
		label := fmt.Sprintf("row %d", o.Index+1)
		if o.Title != "" {
			label += " " + o.Title
		}
		switch {
		case o.OK():
			ui.OK(out, label)
		case o.Skipped:
			ui.Skip(out, label+": skipped")
		default:
			ui.Fail(out, fmt.Sprintf("%s: %v", label, o.Err))
		}
	})
	ui.Info(out, ui.ProgressBar(rep.Saved(), total, 28))

	for _, n := range notices {
		switch n.Level {
		case controller.LevelSuccess:
			ui.OK(out, n.Text)
		case controller.LevelError:
			ui.Fail(out, n.Text)
		}
	}
	return rep.Err()
}
