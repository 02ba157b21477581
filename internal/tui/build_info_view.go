// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/code-sharing-box/models"
)

func buildInfoNotice(info models.AppBuildInfo) models.Notice {
	var b strings.Builder

	b.WriteString("Application: Code Sharing Box\n")
	b.WriteString("Version: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.BuildCommit())

	return models.Notice{Kind: models.NoticeInfo, Text: b.String()}
}
