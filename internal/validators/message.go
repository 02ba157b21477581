package validators

import (
	"context"
	"strings"
	"unicode"

	"github.com/MKhiriev/code-sharing-box/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldDeviceID targets the device identity attached to a message.
	FieldDeviceID = "deviceId"
)

// MessageValidator validates messages arriving at the Message Store Service.
//
// The device identity is opaque: it only has to be present and printable.
// The message text is never validated, empty text is a valid message.
type MessageValidator struct{}

// NewMessageValidator returns a [Validator] for [models.AddMessageRequest]
// and [models.Message] values.
func NewMessageValidator() Validator {
	return &MessageValidator{}
}

// Validate implements [Validator].
func (v *MessageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AddMessageRequest:
		return v.validateDeviceFields(ctx, value.DeviceID, fields...)
	case *models.AddMessageRequest:
		return v.validateDeviceFields(ctx, value.DeviceID, fields...)

	case models.Message:
		return v.validateDeviceFields(ctx, value.DeviceID, fields...)
	case *models.Message:
		return v.validateDeviceFields(ctx, value.DeviceID, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *MessageValidator) validateDeviceFields(_ context.Context, deviceID models.DeviceIdentity, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDeviceID}
	}

	for _, f := range fields {
		switch f {
		case FieldDeviceID:
			if strings.TrimSpace(deviceID.String()) == "" {
				return ErrEmptyDeviceID
			}
			if strings.IndexFunc(deviceID.String(), isNotPrintable) >= 0 {
				return ErrInvalidDeviceID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isNotPrintable(r rune) bool {
	return !unicode.IsPrint(r)
}
