package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/code-sharing-box/internal/adapter"
	"github.com/MKhiriev/code-sharing-box/internal/logger"
	"github.com/MKhiriev/code-sharing-box/internal/mock"
	"github.com/MKhiriev/code-sharing-box/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientMessageSvc(t *testing.T) (ClientMessageService, *mock.MockMessageStoreAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockMessageStoreAdapter(ctrl)
	return NewClientMessageService(mockAdapter, logger.Nop()), mockAdapter
}

func TestClientMessageService_Save(t *testing.T) {
	svc, mockAdapter := newTestClientMessageSvc(t)

	mockAdapter.EXPECT().
		AddMessage(gomock.Any(), models.AddMessageRequest{DeviceID: "abc123xyz0", Message: "hello"}).
		Return(nil)

	require.NoError(t, svc.Save(context.Background(), "abc123xyz0", "hello"))
}

func TestClientMessageService_Save_MapsErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "bad request", err: fmt.Errorf("%w: bad json", adapter.ErrBadRequest), wantErr: ErrMessageRejected},
		{name: "unavailable", err: fmt.Errorf("%w: ", adapter.ErrServiceUnavailable), wantErr: ErrServerUnavailable},
		{name: "internal", err: fmt.Errorf("%w: ", adapter.ErrInternalServerError), wantErr: adapter.ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockAdapter := newTestClientMessageSvc(t)
			mockAdapter.EXPECT().AddMessage(gomock.Any(), gomock.Any()).Return(tt.err)

			err := svc.Save(context.Background(), "d", "m")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientMessageService_Recent(t *testing.T) {
	svc, mockAdapter := newTestClientMessageSvc(t)
	want := models.RecentMessageResponse{Success: true, Message: "hi", UpdatedAt: "2024-03-05T08:07:09Z"}

	mockAdapter.EXPECT().GetRecentMessage(gomock.Any()).Return(want, nil)

	got, err := svc.Recent(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientMessageService_Recent_NotFound(t *testing.T) {
	svc, mockAdapter := newTestClientMessageSvc(t)

	mockAdapter.EXPECT().GetRecentMessage(gomock.Any()).
		Return(models.RecentMessageResponse{}, fmt.Errorf("%w: no message found", adapter.ErrNotFound))

	_, err := svc.Recent(context.Background())

	assert.ErrorIs(t, err, ErrNoRecentMessage)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestMapAdapterError(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))

	plain := errors.New("dial tcp: connection refused")
	assert.Equal(t, plain, mapAdapterError(plain))

	assert.ErrorIs(t, mapAdapterError(adapter.ErrUnsuccessfulResponse), ErrNoRecentMessage)
	assert.ErrorIs(t, mapAdapterError(adapter.ErrBadGateway), ErrServerUnavailable)
}
