package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
)

// Storages groups the server-side repositories into a single value that can
// be passed to the service layer.
type Storages struct {
	MetadataRepository MetadataRepository
	LockRepository     LockRepository
}

// NewStorages initialises the server storage layer: it connects to
// PostgreSQL using the supplied configuration, runs pending schema
// migrations, and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		MetadataRepository: NewMetadataRepository(db, logger),
		LockRepository:     NewLockRepository(db, logger),
	}, nil
}
