package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the terminal UI and blocks until the user quits or ctx is done.
func Run(ctx context.Context, logger *slog.Logger, manager gameManager) error {
	program := tea.NewProgram(
		New(ctx, logger, manager),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}

		return fmt.Errorf("failed to run terminal ui: %w", err)
	}

	return nil
}
