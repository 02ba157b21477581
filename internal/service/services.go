package service

import (
	"fmt"

	"github.com/MKhiriev/code-sharing-box/internal/config"
	"github.com/MKhiriev/code-sharing-box/internal/logger"
	"github.com/MKhiriev/code-sharing-box/internal/store"
	"github.com/MKhiriev/code-sharing-box/models"
)

type Services struct {
	MessageService MessageService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	messages := NewMessageValidationService().Wrap(NewMessageService(storages.MessageRepository, logger))

	return &Services{
		MessageService: messages,
		AppInfoService: appInfo,
	}, nil
}
