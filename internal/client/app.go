package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/code-sharing-box/internal/logger"
	"github.com/MKhiriev/code-sharing-box/internal/workers"
)

type App struct {
	ui      UI
	workers workers.Worker
	logger  *logger.Logger
}

// NewApp returns a client that runs ui in the foreground while jobs run in
// the background.
func NewApp(ui UI, jobs workers.Worker, logger *logger.Logger) *App {
	return &App{ui: ui, workers: jobs, logger: logger}
}

// Run starts the background jobs, then blocks in the UI. The jobs are stopped
// before Run returns.
func (a *App) Run(ctx context.Context) error {
	a.workers.Run(ctx)
	defer a.workers.Stop()

	a.logger.Info().Str("func", "*App.Run").Msg("client started")

	if err := a.ui.Run(ctx); err != nil {
		a.logger.Err(err).Str("func", "*App.Run").Msg("ui exited with error")
		return fmt.Errorf("error running ui: %w", err)
	}

	a.logger.Info().Str("func", "*App.Run").Msg("client stopped")
	return nil
}
