package service

import (
	"context"

	"github.com/MKhiriev/code-sharing-box/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// MessageService is the business layer of the Message Store Service.
type MessageService interface {
	// SaveMessage stores req.Message under req.DeviceID stamped with the
	// current UTC time.
	SaveMessage(ctx context.Context, req models.AddMessageRequest) (models.Message, error)

	// GetRecentMessage returns the most recently stored message.
	GetRecentMessage(ctx context.Context) (models.Message, error)

	// PruneMessages deletes all but the keep newest messages.
	PruneMessages(ctx context.Context, keep int) (int64, error)
}

// AppInfoService exposes build and version information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// MessageServiceWrapper defines middleware composition for MessageService.
// Implementations wrap an existing MessageService to add behavior such as
// logging or validating.
type MessageServiceWrapper interface {
	Wrap(MessageService) MessageService // returns a decorated MessageService applying additional behavior
}
