package client

import "errors"

var (
	ErrInvalidTimestamp     = errors.New("invalid timestamp")
	ErrUnsuccessfulResponse = errors.New("recent message response reported no success")
)
