package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// psql is the shared statement builder configured for PostgreSQL-style
// $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildSelectMetadataQuery builds the SELECT for a single metadata envelope
// keyed by wallet address.
func buildSelectMetadataQuery(ethPublic string) (string, []any, error) {
	query, args, err := psql.
		Select("eth_public", "payload", "updated_at").
		From("wallet_metadata").
		Where(sq.Eq{"eth_public": ethPublic}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpsertMetadataQuery builds the INSERT .. ON CONFLICT DO UPDATE that
// persists an envelope, overwriting any previous payload for the wallet.
func buildUpsertMetadataQuery(envelope models.MetadataEnvelope) (string, []any, error) {
	query, args, err := psql.
		Insert("wallet_metadata").
		Columns("eth_public", "payload", "updated_at").
		Values(envelope.EthPublic, envelope.Payload, envelope.UpdatedAt).
		Suffix(`ON CONFLICT (eth_public) DO UPDATE
			SET payload = EXCLUDED.payload,
			    updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildAcquireLockQuery builds the lease upsert. The insert succeeds when no
// row exists; the conflict branch hands the lease over only when it already
// belongs to the same owner (refresh) or has expired (steal). When a live
// lease belongs to someone else the WHERE clause filters the update out and
// the query returns no rows.
func buildAcquireLockQuery(ethPublic, owner string, ttl time.Duration, now time.Time) (string, []any, error) {
	expiresAt := now.Add(ttl)

	query, args, err := psql.
		Insert("metadata_locks").
		Columns("eth_public", "owner", "expires_at").
		Values(ethPublic, owner, expiresAt).
		Suffix(`ON CONFLICT (eth_public) DO UPDATE
			SET owner = EXCLUDED.owner,
			    expires_at = EXCLUDED.expires_at
			WHERE metadata_locks.owner = EXCLUDED.owner
			   OR metadata_locks.expires_at <= ?`, now).
		Suffix("RETURNING eth_public, owner, expires_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectLockQuery builds the SELECT for the current lease row, used to
// report the present holder after a failed acquire.
func buildSelectLockQuery(ethPublic string) (string, []any, error) {
	query, args, err := psql.
		Select("eth_public", "owner", "expires_at").
		From("metadata_locks").
		Where(sq.Eq{"eth_public": ethPublic}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeleteExpiredLocksQuery builds the DELETE of every lease row that has
// already expired.
func buildDeleteExpiredLocksQuery(now time.Time) (string, []any, error) {
	query, args, err := psql.
		Delete("metadata_locks").
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildReleaseLockQuery builds the owner-checked DELETE of the lease row.
func buildReleaseLockQuery(ethPublic, owner string) (string, []any, error) {
	query, args, err := psql.
		Delete("metadata_locks").
		Where(sq.Eq{"eth_public": ethPublic, "owner": owner}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
