package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

const defaultLeaseTTL = 30 * time.Second

// lockService is the concrete implementation of [LockService]. The TTL of
// every granted lease comes from configuration so that a crashed client
// blocks other writers only for a bounded time.
type lockService struct {
	repository store.LockRepository
	leaseTTL   time.Duration
	logger     *logger.Logger
}

// NewLockService constructs a [LockService] backed by the provided repository
// and lock configuration.
func NewLockService(repository store.LockRepository, cfg config.Locks, logger *logger.Logger) LockService {
	logger.Debug().Msg("creating lock service")

	ttl := cfg.LeaseTTL
	if ttl <= 0 {
		ttl = defaultLeaseTTL
	}

	return &lockService{
		repository: repository,
		leaseTTL:   ttl,
		logger:     logger,
	}
}

// AcquireLock implements [LockService].
func (s *lockService) AcquireLock(ctx context.Context, ethPublic, owner string) (models.LockState, error) {
	if ethPublic == "" || owner == "" {
		return models.LockState{}, fmt.Errorf("%w: empty wallet address or lock owner", ErrInvalidDataProvided)
	}

	return s.repository.AcquireLock(ctx, ethPublic, owner, s.leaseTTL)
}

// ReleaseLock implements [LockService].
func (s *lockService) ReleaseLock(ctx context.Context, ethPublic, owner string) error {
	if ethPublic == "" || owner == "" {
		return fmt.Errorf("%w: empty wallet address or lock owner", ErrInvalidDataProvided)
	}

	return s.repository.ReleaseLock(ctx, ethPublic, owner)
}
