// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/code-sharing-box/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by the [Controller].
type UI interface {
	// Run blocks until the user quits or ctx is cancelled.
	Run(ctx context.Context) error
}

// IdentityProvider resolves the device identity, creating and persisting
// one on first use.
type IdentityProvider interface {
	Resolve(ctx context.Context) (models.DeviceIdentity, error)
}

// MessageStore is the client's view of the Message Store Service.
type MessageStore interface {
	Save(ctx context.Context, deviceID models.DeviceIdentity, text string) error
	Recent(ctx context.Context) (models.RecentMessageResponse, error)
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	Copy(text string) error
}
