package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/code-sharing-box/internal/logger"
	"github.com/MKhiriev/code-sharing-box/internal/service"
)

// NewMessagePruner returns a Worker that keeps only the keep newest messages,
// checking every interval. keep <= 0 or interval <= 0 disables it.
func NewMessagePruner(messages service.MessageService, keep int, interval time.Duration, logger *logger.Logger) Worker {
	if keep <= 0 {
		interval = 0
	}

	return newTickerWorker("message_pruner", interval, func(ctx context.Context) {
		deleted, err := messages.PruneMessages(ctx, keep)
		if err != nil {
			logger.Err(err).Str("worker", "message_pruner").Msg("error pruning messages")
			return
		}
		if deleted > 0 {
			logger.Info().Str("worker", "message_pruner").Int64("deleted", deleted).Int("kept", keep).Msg("messages pruned")
		}
	}, logger)
}
