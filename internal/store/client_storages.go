package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
)

// ClientStorages groups the client-side repositories into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	// MetadataRepository is the SQLite-backed store of encrypted metadata
	// blobs kept on the device.
	MetadataRepository LocalMetadataRepository

	// DeviceShareRepository keeps the device key share.
	DeviceShareRepository DeviceShareRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.Local.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.MigrateClient].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.Local, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.MigrateClient(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		MetadataRepository:    NewLocalMetadataRepository(db, logger),
		DeviceShareRepository: NewDeviceShareRepository(db, logger),
	}, nil
}
