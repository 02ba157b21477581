// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

const (
	// DeviceIDCookieName is the name of the cookie holding the device identity.
	DeviceIDCookieName = "deviceId"

	// DeviceIDCookieMaxAge is the lifetime of the device identity cookie in
	// seconds (365 days).
	DeviceIDCookieMaxAge = 365 * 24 * 60 * 60
)

// Cookie is a client-side persisted name/value pair with browser cookie
// expiry semantics: once ExpiresAt has passed the cookie is treated as absent.
type Cookie struct {
	Name  string
	Value string

	// Path is the cookie path; empty means the default path.
	Path string

	// MaxAge is the lifetime in seconds the cookie was set with.
	MaxAge int

	// ExpiresAt is computed from MaxAge at the moment the cookie is set.
	ExpiresAt time.Time
}

// NewCookie builds a cookie that expires maxAge seconds after now.
func NewCookie(name, value string, maxAge int, now time.Time) Cookie {
	return Cookie{
		Name:      name,
		Value:     value,
		MaxAge:    maxAge,
		ExpiresAt: now.Add(time.Duration(maxAge) * time.Second),
	}
}

// Expired reports whether the cookie is no longer valid at now.
func (c Cookie) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
