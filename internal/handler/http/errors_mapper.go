package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/code-sharing-box/internal/app"
	"github.com/MKhiriev/code-sharing-box/internal/service"
	"github.com/MKhiriev/code-sharing-box/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                   http.StatusBadRequest,
	ErrInvalidGzip:                   http.StatusBadRequest,
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	store.ErrMessageNotFound:  http.StatusNotFound,
	store.ErrStoreUnavailable: http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

var failureMessages = map[int]string{
	http.StatusBadRequest:          app.MsgInvalidDataProvided,
	http.StatusNotFound:            app.MsgNoMessageFound,
	http.StatusInternalServerError: app.MsgInternalServerError,
	http.StatusServiceUnavailable:  app.MsgStoreUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
