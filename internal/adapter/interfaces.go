// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the Message Store Service.
//
// The primary abstraction is [MessageStoreAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPMessageStoreAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrServiceUnavailable] for 503).
package adapter

import (
	"context"

	"github.com/MKhiriev/code-sharing-box/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/message_store_adapter_mock.go -package=mock

// MessageStoreAdapter defines transport-agnostic communication with the
// Message Store Service.
type MessageStoreAdapter interface {
	// AddMessage stores req.Message under req.DeviceID. Any non-2xx status is
	// returned as an error; the response body is not inspected.
	AddMessage(ctx context.Context, req models.AddMessageRequest) error

	// GetRecentMessage fetches the most recently stored message. Returns
	// [ErrNotFound] (wrapped) when the service holds no messages and
	// [ErrUnsuccessfulResponse] when a 2xx body reports success=false.
	GetRecentMessage(ctx context.Context) (models.RecentMessageResponse, error)
}
