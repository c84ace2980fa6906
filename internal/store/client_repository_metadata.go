// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
)

// localMetadataRepository is the SQLite implementation of
// [LocalMetadataRepository]. Blobs arrive already encrypted; this layer never
// sees plaintext metadata.
type localMetadataRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLocalMetadataRepository constructs a [LocalMetadataRepository] backed by
// the provided SQLite connection and logger.
func NewLocalMetadataRepository(db *DB, logger *logger.Logger) LocalMetadataRepository {
	logger.Debug().Msg("creating local metadata repository")
	return &localMetadataRepository{
		db:     db,
		logger: logger,
	}
}

// GetMetadata returns the encrypted blob for the given wallet address, or
// [ErrMetadataNotFound] if the device has never stored one.
func (r *localMetadataRepository) GetMetadata(ctx context.Context, ethPublic string) ([]byte, error) {
	log := logger.FromContext(ctx)

	var blob []byte
	row := r.db.QueryRowContext(ctx, getLocalMetadata, ethPublic)
	if err := row.Scan(&blob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMetadataNotFound
		}

		log.Err(err).Str("func", "*localMetadataRepository.GetMetadata").Msg("error: scanning error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return blob, nil
}

// SaveMetadata upserts the encrypted blob for the given wallet address.
func (r *localMetadataRepository) SaveMetadata(ctx context.Context, ethPublic string, blob []byte) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, saveLocalMetadata, ethPublic, blob); err != nil {
		log.Err(err).Str("func", "*localMetadataRepository.SaveMetadata").Msg("error: executing upsert")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
