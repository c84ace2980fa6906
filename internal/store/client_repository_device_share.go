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

// deviceShareRepository is the SQLite implementation of
// [DeviceShareRepository].
type deviceShareRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDeviceShareRepository constructs a [DeviceShareRepository] backed by the
// provided SQLite connection and logger.
func NewDeviceShareRepository(db *DB, logger *logger.Logger) DeviceShareRepository {
	logger.Debug().Msg("creating device share repository")
	return &deviceShareRepository{
		db:     db,
		logger: logger,
	}
}

// GetDeviceShare returns the stored key share for the given wallet address,
// or [ErrDeviceShareNotFound] if the device holds none.
func (r *deviceShareRepository) GetDeviceShare(ctx context.Context, ethPublic string) ([]byte, error) {
	log := logger.FromContext(ctx)

	var share []byte
	row := r.db.QueryRowContext(ctx, getDeviceShare, ethPublic)
	if err := row.Scan(&share); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDeviceShareNotFound
		}

		log.Err(err).Str("func", "*deviceShareRepository.GetDeviceShare").Msg("error: scanning error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return share, nil
}

// SaveDeviceShare upserts the key share for the given wallet address.
func (r *deviceShareRepository) SaveDeviceShare(ctx context.Context, ethPublic string, share []byte) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, saveDeviceShare, ethPublic, share); err != nil {
		log.Err(err).Str("func", "*deviceShareRepository.SaveDeviceShare").Msg("error: executing upsert")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// HasDeviceShare reports whether the device already holds a share for the
// given wallet address.
func (r *deviceShareRepository) HasDeviceShare(ctx context.Context, ethPublic string) (bool, error) {
	log := logger.FromContext(ctx)

	var count int
	row := r.db.QueryRowContext(ctx, countDeviceShares, ethPublic)
	if err := row.Scan(&count); err != nil {
		log.Err(err).Str("func", "*deviceShareRepository.HasDeviceShare").Msg("error: scanning error")
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count > 0, nil
}
