package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/code-sharing-box/internal/logger"
	"github.com/MKhiriev/code-sharing-box/models"
)

type accessEntryKey struct{}

// accessEntry collects what handlers learn from the request body so the
// access line can report it.
type accessEntry struct {
	deviceID models.DeviceIdentity
}

// noteDeviceID attributes the request's access line to deviceID.
func noteDeviceID(r *http.Request, deviceID models.DeviceIdentity) {
	if entry, ok := r.Context().Value(accessEntryKey{}).(*accessEntry); ok {
		entry.deviceID = deviceID
	}
}

// statusRecorder remembers the status and the number of body bytes that
// reached the client. WriteHeader is forwarded once.
type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	if w.status != 0 {
		return
	}
	w.status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// withLogging writes one access line per request; 5xx responses are logged
// at error level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		entry := &accessEntry{}
		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), accessEntryKey{}, entry)))

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}

		log := logger.FromRequest(r)
		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}
		if entry.deviceID != "" {
			event = event.Str("device_id", entry.deviceID.String())
		}

		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", rec.size).
			Dur("duration", time.Since(start)).
			Msg("request served")
	})
}
