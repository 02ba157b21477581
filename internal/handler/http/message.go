package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/code-sharing-box/internal/app"
	"github.com/MKhiriev/code-sharing-box/internal/logger"
	"github.com/MKhiriev/code-sharing-box/internal/store"
	"github.com/MKhiriev/code-sharing-box/internal/utils"
	"github.com/MKhiriev/code-sharing-box/models"
)

func (h *Handler) addMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AddMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.addMessage").Msg("Invalid JSON was passed")
		writeFailure(w, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	noteDeviceID(r, req.DeviceID)

	msg, err := h.services.MessageService.SaveMessage(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addMessage").Msg("error saving message")
		writeFailure(w, err)
		return
	}

	log.Debug().Str("func", "*Handler.addMessage").Int64("id", msg.ID).Msg("message stored")
	utils.WriteJSON(w, models.AddMessageResponse{Success: true, Message: app.MsgMessageSaved}, http.StatusOK)
}

func (h *Handler) recentMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	msg, err := h.services.MessageService.GetRecentMessage(r.Context())
	if errors.Is(err, store.ErrMessageNotFound) {
		utils.WriteJSON(w, models.RecentMessageResponse{Success: false, Message: app.MsgNoMessageFound}, http.StatusNotFound)
		return
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.recentMessage").Msg("error getting recent message")
		writeFailure(w, err)
		return
	}

	utils.WriteJSON(w, models.RecentMessageResponse{
		Success:   true,
		Message:   msg.Text,
		UpdatedAt: msg.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, http.StatusOK)
}

// writeFailure responds with {"success":false} and the status mapped from err.
func writeFailure(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	utils.WriteJSON(w, models.AddMessageResponse{Success: false, Message: failureMessages[status]}, status)
}
