// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound values before they reach the service
// layer. The Message Store Service validates every AddMessageRequest with
// [MessageValidator]; callers may restrict a check to named fields.
package validators

import "context"

// Validator validates obj, optionally only the named fields. Unknown types
// yield [ErrUnsupportedType], unknown fields [ErrUnknownField].
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
