package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrNoRecentMessage is returned on the client when the Message Store
	// Service holds no message yet.
	ErrNoRecentMessage = errors.New("no recent message on server")

	// ErrServerUnavailable is returned on the client when the Message Store
	// Service cannot be reached or reports a transient failure.
	ErrServerUnavailable = errors.New("message store service is unavailable")

	// ErrMessageRejected is returned on the client when the Message Store
	// Service refuses a message as malformed.
	ErrMessageRejected = errors.New("message rejected by server")

	ErrIdentityUnavailable = errors.New("device identity is unavailable")
	ErrClipboardWrite      = errors.New("failed to write to clipboard")
)
