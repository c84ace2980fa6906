package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// metadataRepository is the PostgreSQL-backed implementation of
// [MetadataRepository]. It stores one encrypted envelope per wallet address
// in the "wallet_metadata" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type metadataRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMetadataRepository constructs a [MetadataRepository] backed by the
// provided database connection and logger.
func NewMetadataRepository(db *DB, logger *logger.Logger) MetadataRepository {
	logger.Debug().Msg("creating metadata repository")
	return &metadataRepository{
		db:     db,
		logger: logger,
	}
}

// GetMetadata retrieves the stored envelope for the given wallet address.
//
// Error handling:
//   - sql.ErrNoRows → [ErrMetadataNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *metadataRepository) GetMetadata(ctx context.Context, ethPublic string) (models.MetadataEnvelope, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMetadataQuery(ethPublic)
	if err != nil {
		log.Err(err).Str("func", "*metadataRepository.GetMetadata").Msg("error: building query")
		return models.MetadataEnvelope{}, err
	}

	var envelope models.MetadataEnvelope
	row := r.db.QueryRowContext(ctx, query, args...)

	// scan found envelope from db
	if err := row.Scan(&envelope.EthPublic, &envelope.Payload, &envelope.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MetadataEnvelope{}, ErrMetadataNotFound
		}

		log.Err(err).Str("func", "*metadataRepository.GetMetadata").Msg("error: scanning error")
		return models.MetadataEnvelope{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return envelope, nil
}

// SaveMetadata upserts the envelope keyed by its wallet address. The previous
// payload, if any, is overwritten wholesale: merge decisions happen on the
// client before the write reaches the server.
//
// Error handling:
//   - Any driver-level error → wrapped as "unexpected DB error".
//   - Zero affected rows → [ErrMetadataNotSaved].
func (r *metadataRepository) SaveMetadata(ctx context.Context, envelope models.MetadataEnvelope) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertMetadataQuery(envelope)
	if err != nil {
		log.Err(err).Str("func", "*metadataRepository.SaveMetadata").Msg("error: building query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*metadataRepository.SaveMetadata").Msg("error: executing upsert")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*metadataRepository.SaveMetadata").Msg("error: reading affected rows")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrMetadataNotSaved
	}

	return nil
}
