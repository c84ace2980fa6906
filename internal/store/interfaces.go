package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// MetadataRepository is the server-side store of metadata envelopes, keyed
// by wallet address. The server treats the payload as opaque bytes; all
// merge logic lives on the client.
type MetadataRepository interface {
	// GetMetadata returns the stored envelope for ethPublic.
	// Returns [ErrMetadataNotFound] if no record exists.
	GetMetadata(ctx context.Context, ethPublic string) (models.MetadataEnvelope, error)

	// SaveMetadata upserts the envelope for its wallet address.
	SaveMetadata(ctx context.Context, envelope models.MetadataEnvelope) error
}

// LockRepository manages the per-wallet advisory write-lock lease.
type LockRepository interface {
	// AcquireLock grants the lease for ethPublic to owner for ttl.
	// Re-acquiring an own unexpired lease refreshes it; an expired lease
	// held by someone else is stolen. Returns [ErrLockHeld] when a live
	// lease belongs to a different owner.
	AcquireLock(ctx context.Context, ethPublic, owner string, ttl time.Duration) (models.LockState, error)

	// ReleaseLock drops the lease for ethPublic if it belongs to owner.
	// Releasing an absent lock is a no-op; releasing someone else's live
	// lease returns [ErrLockNotOwned].
	ReleaseLock(ctx context.Context, ethPublic, owner string) error

	// DeleteExpiredLocks removes every lease that has already expired and
	// returns the number of rows deleted. Expiry is enforced at acquire
	// time too; the sweep only keeps the table small.
	DeleteExpiredLocks(ctx context.Context) (int64, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
