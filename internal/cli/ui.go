package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskcal/internal/logging"
	"github.com/sandeepkv93/taskcal/internal/update"
	"go.uber.org/zap"
)

func runUI(ctx context.Context, o *rootOptions) error {
	s, err := open(ctx, o, logging.NewForTerminalUI)
	if err != nil {
		return err
	}
	defer s.Close()

	program := tea.NewProgram(update.NewModel(ctx, s.state, s.cfg.UI, s.logger), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		s.logger.Error("terminal ui failed", zap.Error(err))
		return err
	}
	return nil
}
