package service

import (
	"github.com/MKhiriev/code-sharing-box/internal/adapter"
	"github.com/MKhiriev/code-sharing-box/internal/logger"
	"github.com/MKhiriev/code-sharing-box/internal/store"
	"github.com/MKhiriev/code-sharing-box/internal/utils"
)

type ClientServices struct {
	IdentityService  IdentityService
	MessageService   ClientMessageService
	ClipboardService ClipboardService
}

func NewClientServices(storages *store.ClientStorages, messageAdapter adapter.MessageStoreAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		IdentityService:  NewIdentityService(storages.CookieRepository, utils.NewDeviceIDGenerator(), logger),
		MessageService:   NewClientMessageService(messageAdapter, logger),
		ClipboardService: NewClipboardService(),
	}
}
