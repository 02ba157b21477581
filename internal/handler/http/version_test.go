package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/code-sharing-box/internal/logger"
	"github.com/MKhiriev/code-sharing-box/internal/mock"
	"github.com/MKhiriev/code-sharing-box/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newHandlerWithVersion(t *testing.T, version string) *Handler {
	t.Helper()
	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(version).AnyTimes()

	return NewHandler(&service.Services{AppInfoService: appInfo}, logger.Nop())
}

func TestGetServerVersion(t *testing.T) {
	for _, want := range []string{"1.2.3", "", "v2.0.0-beta+build.42"} {
		h := newHandlerWithVersion(t, want)

		rec := httptest.NewRecorder()
		h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, want, rec.Body.String())
		assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	}
}

func TestGetServerVersion_ViaRouter(t *testing.T) {
	router := newHandlerWithVersion(t, "3.0.0").Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3.0.0", rec.Body.String())
}
