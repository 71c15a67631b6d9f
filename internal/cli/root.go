// Package cli is the itemdesk command tree.
package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// app is shared by the commands; the runner is built before any command runs.
type app struct {
	opts Options
	r    *runner
}

// close releases what the runner opened. Safe when no command ran.
func (a *app) close() { a.r.close() }

// Execute runs the command tree on args. The runner is closed afterwards even
// when the command failed.
func Execute(ctx context.Context, version string, args []string) error {
	return execute(ctx, &app{}, version, args)
}

func execute(ctx context.Context, a *app, version string, args []string) error {
	defer a.close()
	root := newRootCmd(a)
	root.SetArgs(args)
	return fang.Execute(
		ctx,
		root,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	)
}

// newRootCmd builds the itemdesk command. Without a subcommand it opens the
// interactive screen.
func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "itemdesk",
		Short: "Enter items and browse the saved ones",
		Long: `itemdesk is a client for an item backend.

Items are entered as draft rows (title, description, quantity, price, date and
an optional image) and saved one request per row. Saved items can be listed
page by page, filtered by title and date range.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner(a.opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.r = r
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), a.r, nil)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.opts.ConfigPath, "config", "", "Path to config file (default ~/.itemdesk/config.yaml)")
	pf.StringVar(&a.opts.APIURL, "api-url", "", "Backend base URL")
	pf.StringVar(&a.opts.LogFile, "log-file", "", "Log file path")
	pf.BoolVar(&a.opts.Debug, "debug", false, "Debug logging")
	pf.StringVar(&a.opts.Theme, "theme", "", "Output theme (classic, neon or mono)")
	pf.BoolVar(&a.opts.NoColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newTUICmd(a))
	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newAddCmd(a))

	return cmd
}
