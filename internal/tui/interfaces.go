package tui

import (
	"context"

	"github.com/MKhiriev/code-sharing-box/models"
)

// Controller is the sync controller the screen renders and drives.
type Controller interface {
	Mount(ctx context.Context)
	Edit(text string)
	Save(ctx context.Context) models.Notice
	Copy() models.Notice
	Clear()
	Buffer() string
	LastUpdated() string
	State() models.SyncState
}
