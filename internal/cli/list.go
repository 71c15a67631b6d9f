package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/itemdesk/internal/controller"
	"github.com/idilsaglam/itemdesk/internal/model"
	"github.com/idilsaglam/itemdesk/internal/ui"
)

func newListCmd(a *app) *cobra.Command {
	var (
		title string
		from  string
		to    string
		page  int
	)

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List saved items, one page at a time",
		Example: `  itemdesk ls
  itemdesk ls --title mug --from 2024-01-01 --to 2024-01-31
  itemdesk ls --page 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := model.ParseDate(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			end, err := model.ParseDate(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}

			ctl := a.r.controller(nil)
			ctl.SetFilter(model.Filter{Title: title, DateRange: model.DateRange{Start: start, End: end}})
			ctl.SetPage(page)

			if n := ctl.Refresh(cmd.Context()); n.Level == controller.LevelError {
				ui.Fail(cmd.ErrOrStderr(), n.Text)
				return n.Err
			}

			p := ctl.Pagination()
			lines := []string{
				ui.ListingHeader(p),
				ui.PageBar(p),
				"",
			}
			lines = append(lines, ui.ItemLines(ctl.Listing().Items, a.r.cfg.PlaceholderImage)...)
			ui.Panel(cmd.OutOrStdout(), lines)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Only items whose title contains this text")
	cmd.Flags().StringVar(&from, "from", "", "Earliest date, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "Latest date, YYYY-MM-DD")
	cmd.Flags().IntVar(&page, "page", 1, "Page number, starting at 1")
	return cmd
}
