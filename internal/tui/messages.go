package tui

import "github.com/MKhiriev/code-sharing-box/models"

// mountedMsg is sent once the recent message has been loaded (or not).
type mountedMsg struct{}

// noticeMsg carries the outcome of a save or copy.
type noticeMsg struct {
	notice models.Notice
}
