package http

import (
	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	tokens   config.Auth
	version  string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		tokens:   cfg.Auth,
		version:  cfg.App.Version,
		logger:   logger,
	}
}
