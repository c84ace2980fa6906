package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// metadataStoreService is the concrete implementation of
// [MetadataStoreService]. It performs input validation and delegates
// persistence to the repository.
type metadataStoreService struct {
	repository store.MetadataRepository
	logger     *logger.Logger
}

// NewMetadataStoreService constructs a [MetadataStoreService] backed by the
// provided repository and logger.
func NewMetadataStoreService(repository store.MetadataRepository, logger *logger.Logger) MetadataStoreService {
	logger.Debug().Msg("creating metadata store service")
	return &metadataStoreService{
		repository: repository,
		logger:     logger,
	}
}

// GetMetadata implements [MetadataStoreService].
func (s *metadataStoreService) GetMetadata(ctx context.Context, ethPublic string) (models.MetadataEnvelope, error) {
	if ethPublic == "" {
		return models.MetadataEnvelope{}, fmt.Errorf("%w: empty wallet address", ErrInvalidDataProvided)
	}

	return s.repository.GetMetadata(ctx, ethPublic)
}

// SaveMetadata implements [MetadataStoreService]. The envelope's UpdatedAt is
// stamped server-side so clients cannot fabricate it.
func (s *metadataStoreService) SaveMetadata(ctx context.Context, envelope models.MetadataEnvelope) error {
	log := logger.FromContext(ctx)

	if envelope.EthPublic == "" {
		return fmt.Errorf("%w: empty wallet address", ErrInvalidDataProvided)
	}
	if len(envelope.Payload) == 0 {
		return fmt.Errorf("%w: empty metadata payload", ErrInvalidDataProvided)
	}

	envelope.UpdatedAt = time.Now().UTC()

	if err := s.repository.SaveMetadata(ctx, envelope); err != nil {
		log.Err(err).Str("func", "*metadataStoreService.SaveMetadata").Str("ethPublic", envelope.EthPublic).Msg("error saving metadata envelope")
		return err
	}

	return nil
}
