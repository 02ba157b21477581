package service

import (
	"context"

	"github.com/MKhiriev/code-sharing-box/internal/adapter"
	"github.com/MKhiriev/code-sharing-box/internal/logger"
	"github.com/MKhiriev/code-sharing-box/models"
)

type clientMessageService struct {
	adapter adapter.MessageStoreAdapter

	logger *logger.Logger
}

// NewClientMessageService returns a ClientMessageService using the given
// transport adapter.
func NewClientMessageService(messageAdapter adapter.MessageStoreAdapter, logger *logger.Logger) ClientMessageService {
	return &clientMessageService{adapter: messageAdapter, logger: logger}
}

func (s *clientMessageService) Save(ctx context.Context, deviceID models.DeviceIdentity, text string) error {
	err := s.adapter.AddMessage(ctx, models.AddMessageRequest{DeviceID: deviceID, Message: text})
	return mapAdapterError(err)
}

func (s *clientMessageService) Recent(ctx context.Context) (models.RecentMessageResponse, error) {
	recent, err := s.adapter.GetRecentMessage(ctx)
	if err != nil {
		return models.RecentMessageResponse{}, mapAdapterError(err)
	}
	return recent, nil
}
