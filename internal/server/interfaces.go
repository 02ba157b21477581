package server

import "context"

// Server is the Message Store Service process: HTTP plus background jobs.
type Server interface {
	// Run serves until ctx is done or the listener fails.
	Run(ctx context.Context) error

	Shutdown()
}
