package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/code-sharing-box/internal/logger"
	"github.com/MKhiriev/code-sharing-box/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	controller Controller
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger
}

func New(controller Controller, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{controller: controller, buildInfo: buildInfo, logger: logger}
}

// Run shows the editor screen until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newSyncModel(ctx, t.controller, t.buildInfo, t.logger)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}
