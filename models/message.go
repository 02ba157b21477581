// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DeviceIdentity is the opaque token a client uses to tag the messages it
// saves. It is generated on the client and never validated by the server
// beyond being a non-empty key.
type DeviceIdentity string

// String returns the raw token.
func (d DeviceIdentity) String() string {
	return string(d)
}

// Message is a single stored shared message.
type Message struct {
	// ID is the server-assigned row identifier.
	ID int64 `json:"id"`

	// DeviceID identifies the client that saved the message.
	DeviceID DeviceIdentity `json:"deviceId"`

	// Text is the message body exactly as typed by the user.
	Text string `json:"message"`

	// UpdatedAt is the moment the message was stored.
	UpdatedAt time.Time `json:"updatedAt"`
}
