package models

// AddMessageRequest is the body of POST /add-message.
type AddMessageRequest struct {
	DeviceID DeviceIdentity `json:"deviceId"`
	Message  string         `json:"message"`
}

// AddMessageResponse is returned by POST /add-message. Clients only rely on
// the status code; the body is informational.
type AddMessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// RecentMessageResponse is the body of GET /recent-message.
//
// When Success is false, Message carries a human-readable reason and
// UpdatedAt is empty.
type RecentMessageResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
