package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(header, title, data, status, hotKeys string) string {
	var b strings.Builder

	b.WriteString(labelStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")
	b.WriteString(data)
	b.WriteString("\n\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(status) != "" {
		b.WriteString(statusStyle.Render(status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(hotKeys))

	return appStyle.Render(b.String())
}
