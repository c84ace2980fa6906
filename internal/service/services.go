package service

import (
	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
)

type Services struct {
	MetadataStoreService MetadataStoreService
	LockService          LockService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		MetadataStoreService: NewMetadataStoreService(storages.MetadataRepository, logger),
		LockService:          NewLockService(storages.LockRepository, cfg.Locks, logger),
	}
}
