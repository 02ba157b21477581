package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyDeviceID   = errors.New("deviceId is required")
	ErrInvalidDeviceID = errors.New("deviceId contains invalid characters")
)
