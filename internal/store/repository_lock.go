package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// lockRepository is the PostgreSQL-backed implementation of [LockRepository].
// A lease is a single row in the "metadata_locks" table: (eth_public, owner,
// expires_at). Expiry is enforced at acquire time rather than by a reaper, so
// a crashed client blocks writers only until its lease runs out.
type lockRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewLockRepository constructs a [LockRepository] backed by the provided
// database connection and logger.
func NewLockRepository(db *DB, logger *logger.Logger) LockRepository {
	logger.Debug().Msg("creating lock repository")
	return &lockRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// AcquireLock attempts to grant the write lease for ethPublic to owner.
//
// The upsert inserts a fresh lease, refreshes an own one, or steals an
// expired one; when a live lease belongs to another owner the statement
// matches no rows and the current holder is reported via [ErrLockHeld].
//
// Error handling:
//   - sql.ErrNoRows from the upsert → live foreign lease → [ErrLockHeld].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *lockRepository) AcquireLock(ctx context.Context, ethPublic, owner string, ttl time.Duration) (models.LockState, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAcquireLockQuery(ethPublic, owner, ttl, r.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*lockRepository.AcquireLock").Msg("error: building query")
		return models.LockState{}, err
	}

	var lock models.LockState
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&lock.EthPublic, &lock.Owner, &lock.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// lease is held by someone else: report the current holder
			return r.currentLock(ctx, ethPublic)
		}

		log.Err(err).Str("func", "*lockRepository.AcquireLock").Msg("error: scanning error")
		return models.LockState{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return lock, nil
}

// currentLock loads the live lease row after a failed acquire and pairs it
// with [ErrLockHeld]. The holder may vanish between the two queries; that
// still surfaces as ErrLockHeld and the caller's next poll succeeds.
func (r *lockRepository) currentLock(ctx context.Context, ethPublic string) (models.LockState, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLockQuery(ethPublic)
	if err != nil {
		log.Err(err).Str("func", "*lockRepository.currentLock").Msg("error: building query")
		return models.LockState{}, err
	}

	var lock models.LockState
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&lock.EthPublic, &lock.Owner, &lock.ExpiresAt); err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Str("func", "*lockRepository.currentLock").Msg("error: scanning error")
		return models.LockState{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return lock, ErrLockHeld
}

// ReleaseLock drops the lease for ethPublic if it belongs to owner.
//
// Releasing an absent lease is a no-op: the row may have expired and been
// stolen already, and a releasing client has nothing useful to do about it.
// A present lease under a different owner returns [ErrLockNotOwned].
func (r *lockRepository) ReleaseLock(ctx context.Context, ethPublic, owner string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildReleaseLockQuery(ethPublic, owner)
	if err != nil {
		log.Err(err).Str("func", "*lockRepository.ReleaseLock").Msg("error: building query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*lockRepository.ReleaseLock").Msg("error: executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*lockRepository.ReleaseLock").Msg("error: reading affected rows")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected > 0 {
		return nil
	}

	// nothing deleted: either no lease exists (fine) or it belongs to
	// another owner (report it)
	lock, err := r.currentLock(ctx, ethPublic)
	if errors.Is(err, ErrLockHeld) && lock.Owner != "" {
		return ErrLockNotOwned
	}
	if err != nil && !errors.Is(err, ErrLockHeld) {
		return err
	}

	return nil
}

// DeleteExpiredLocks sweeps every lease row whose expiry has passed.
func (r *lockRepository) DeleteExpiredLocks(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredLocksQuery(r.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*lockRepository.DeleteExpiredLocks").Msg("error: building query")
		return 0, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*lockRepository.DeleteExpiredLocks").Msg("error: executing delete")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*lockRepository.DeleteExpiredLocks").Msg("error: reading affected rows")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return affected, nil
}
