package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/code-sharing-box/internal/validators"
	"github.com/MKhiriev/code-sharing-box/models"
)

type MessageValidationService struct {
	inner     MessageService
	validator validators.Validator
}

func NewMessageValidationService() MessageServiceWrapper {
	return &MessageValidationService{
		validator: validators.NewMessageValidator(),
	}
}

func (v *MessageValidationService) SaveMessage(ctx context.Context, req models.AddMessageRequest) (models.Message, error) {
	// message body may be empty, only the device identity is checked
	if err := v.validator.Validate(ctx, req, validators.FieldDeviceID); err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SaveMessage(ctx, req)
}

func (v *MessageValidationService) GetRecentMessage(ctx context.Context) (models.Message, error) {
	return v.inner.GetRecentMessage(ctx)
}

func (v *MessageValidationService) PruneMessages(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		return 0, fmt.Errorf("%w: negative keep count %d", ErrInvalidDataProvided, keep)
	}
	return v.inner.PruneMessages(ctx, keep)
}

func (v *MessageValidationService) Wrap(wrapper MessageService) MessageService {
	v.inner = wrapper
	return v
}
