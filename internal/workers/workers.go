package workers

import (
	"context"

	"github.com/MKhiriev/code-sharing-box/internal/config"
	"github.com/MKhiriev/code-sharing-box/internal/logger"
	"github.com/MKhiriev/code-sharing-box/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers groups ws so they can be started and stopped together.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// NewServerWorkers returns the background jobs of the Message Store Service.
func NewServerWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	return NewWorkers(
		NewMessagePruner(services.MessageService, cfg.KeepMessages, cfg.PruneInterval, logger),
	)
}

// NewClientWorkers returns the background jobs of the client.
func NewClientWorkers(services *service.ClientServices, cfg config.ClientWorkers, logger *logger.Logger) *Workers {
	return NewWorkers(
		NewCookieSweeper(services.IdentityService, cfg.CookieSweepInterval, logger),
	)
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
