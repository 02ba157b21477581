package service

import (
	"context"

	"github.com/MKhiriev/code-sharing-box/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// IdentityService owns the device identity kept in the client's cookie jar.
type IdentityService interface {
	// Resolve returns the identity stored in the deviceId cookie. When the
	// cookie is absent or expired a fresh identity is generated and persisted
	// with a one year lifetime before it is returned. An existing cookie is
	// never rewritten.
	Resolve(ctx context.Context) (models.DeviceIdentity, error)

	// SweepExpired deletes expired cookies and returns how many were removed.
	SweepExpired(ctx context.Context) (int64, error)
}

// ClientMessageService talks to the Message Store Service on behalf of the
// client. Transport errors are translated into this package's sentinels.
type ClientMessageService interface {
	// Save stores text under deviceID.
	Save(ctx context.Context, deviceID models.DeviceIdentity, text string) error

	// Recent fetches the latest stored message.
	Recent(ctx context.Context) (models.RecentMessageResponse, error)
}

// ClipboardService writes text to the system clipboard.
type ClipboardService interface {
	Copy(text string) error
}

// DeviceIDGenerator produces new device identities.
type DeviceIDGenerator interface {
	Generate() (models.DeviceIdentity, error)
}
