package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/code-sharing-box/internal/logger"
	"github.com/MKhiriev/code-sharing-box/internal/store"
	"github.com/MKhiriev/code-sharing-box/models"
)

type messageService struct {
	repo store.MessageRepository
	now  func() time.Time

	logger *logger.Logger
}

// NewMessageService returns a MessageService persisting through repo.
func NewMessageService(repo store.MessageRepository, logger *logger.Logger) MessageService {
	return &messageService{
		repo:   repo,
		now:    time.Now,
		logger: logger,
	}
}

func (s *messageService) SaveMessage(ctx context.Context, req models.AddMessageRequest) (models.Message, error) {
	// postgres keeps microseconds; truncating keeps the returned value equal
	// to what a later read yields
	updatedAt := s.now().UTC().Truncate(time.Microsecond)

	msg, err := s.repo.SaveMessage(ctx, req.DeviceID, req.Message, updatedAt)
	if err != nil {
		return models.Message{}, fmt.Errorf("error saving message: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*messageService.SaveMessage").
		Int64("id", msg.ID).
		Str("device_id", msg.DeviceID.String()).
		Msg("message saved")

	return msg, nil
}

func (s *messageService) GetRecentMessage(ctx context.Context) (models.Message, error) {
	msg, err := s.repo.GetRecentMessage(ctx)
	if err != nil {
		return models.Message{}, fmt.Errorf("error getting recent message: %w", err)
	}
	return msg, nil
}

func (s *messageService) PruneMessages(ctx context.Context, keep int) (int64, error) {
	deleted, err := s.repo.PruneMessages(ctx, keep)
	if err != nil {
		return 0, fmt.Errorf("error pruning messages: %w", err)
	}
	return deleted, nil
}
