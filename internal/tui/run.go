package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/itemdesk/internal/controller"
)

// Run starts the interactive screen and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, ctl *controller.Controller, opts Options) error {
	p := tea.NewProgram(New(ctx, ctl, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
