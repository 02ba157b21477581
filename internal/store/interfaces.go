// Package store implements persistence for both binaries: the message
// repository of the Message Store Service (PostgreSQL or SQLite) and the
// client's local cookie repository (SQLite).
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/code-sharing-box/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// MessageRepository persists shared messages on the server side.
type MessageRepository interface {
	// SaveMessage appends a message attributed to deviceID, stamped with
	// updatedAt, and returns the stored row.
	SaveMessage(ctx context.Context, deviceID models.DeviceIdentity, text string, updatedAt time.Time) (models.Message, error)

	// GetRecentMessage returns the row with the greatest updated_at (ties
	// broken by id). Returns [ErrMessageNotFound] when the table is empty.
	GetRecentMessage(ctx context.Context) (models.Message, error)

	// PruneMessages deletes every row except the keep newest ones and
	// returns the number of deleted rows.
	PruneMessages(ctx context.Context, keep int) (int64, error)
}

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
