// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// Message Store Service handlers and server.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation.
package app

const (
	// MsgMessageSaved confirms a stored message.
	MsgMessageSaved = "Message saved"

	// MsgNoMessageFound is returned by GET /recent-message while nothing has
	// been stored yet.
	MsgNoMessageFound = "no message found"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or the device identity is missing.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgStoreUnavailable is returned when the database is temporarily
	// unreachable. Repeating the request later may succeed.
	MsgStoreUnavailable = "store is temporarily unavailable"

	// MsgRequestTimedOut is the body written when a request exceeds the
	// configured server request timeout.
	MsgRequestTimedOut = "request timed out"
)
