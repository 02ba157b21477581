package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/code-sharing-box/internal/logger"
	"github.com/MKhiriev/code-sharing-box/internal/service"
)

// NewCookieSweeper returns a Worker that removes expired cookies from the
// client's jar every interval.
func NewCookieSweeper(identity service.IdentityService, interval time.Duration, logger *logger.Logger) Worker {
	return newTickerWorker("cookie_sweeper", interval, func(ctx context.Context) {
		deleted, err := identity.SweepExpired(ctx)
		if err != nil {
			logger.Err(err).Str("worker", "cookie_sweeper").Msg("error sweeping cookies")
			return
		}
		if deleted > 0 {
			logger.Debug().Str("worker", "cookie_sweeper").Int64("deleted", deleted).Msg("expired cookies removed")
		}
	}, logger)
}
