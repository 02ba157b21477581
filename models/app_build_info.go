// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// BuildValueUnknown stands in for metadata the linker did not inject.
const BuildValueUnknown = "N/A"

// AppBuildInfo is the linker-injected metadata of a code-sharing-box binary.
// The client shows it on f1, the server prints it on start and falls back to
// its version when APP_VERSION is unset.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo trims the injected values; blank ones become
// [BuildValueUnknown].
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orUnknown(version),
		date:    orUnknown(date),
		commit:  orUnknown(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return a.version
}

func (a AppBuildInfo) BuildDate() string {
	return a.date
}

func (a AppBuildInfo) BuildCommit() string {
	return a.commit
}

// String renders the banner printed before a binary starts.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", a.version, a.date, a.commit)
}

func orUnknown(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return BuildValueUnknown
	}
	return v
}
