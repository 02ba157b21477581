// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself, before a request
// reaches the service layer. Callers can match against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the request body cannot be decoded
	// into the expected JSON document.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidGzip is returned when a body sent with Content-Encoding:
	// gzip does not inflate.
	ErrInvalidGzip = errors.New("invalid gzip body")
)
