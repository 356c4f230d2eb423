package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/duartefn/escala/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive calendar dashboard. The dashboard works on an
// in-memory snapshot; any deletions made during the session are persisted
// once on exit.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	state, err := r.loadState()
	if err != nil {
		return err
	}

	model := ui.NewModel(state, r.today)
	program := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if m, ok := finalModel.(ui.Model); ok && m.Dirty() {
		r.saveState(m.State())
	}

	return nil
}
