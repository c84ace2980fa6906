// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

// CurrentUserWallet supplies the wallet whose metadata is being replicated.
// The coordinator reads it once at the start of every pass.
type CurrentUserWallet interface {
	GetUserWallet(ctx context.Context) (models.UserWallet, error)
}

// ErrorObserver receives the non-fatal errors of a synchronization pass:
// unreachable replicas that were skipped and write-backs that failed. The
// pass goes on; the observer decides whether anyone needs to hear about it.
type ErrorObserver interface {
	ObserveError(ctx context.Context, err error)
}

// Replica is one participant of metadata synchronization: the on-device
// store or one remote KV server. Implementations handle their own
// encryption and serialization; the coordinator only sees decoded records.
type Replica interface {
	// Name identifies the replica in logs and error reports.
	Name() string

	// Local reports whether this is the on-device replica. The local
	// replica is exempt from write locking, and its load failure aborts
	// the whole pass where a remote failure is merely skipped.
	Local() bool

	// Load returns the replica's current record, or (nil, nil) when the
	// replica is reachable but holds no record for the wallet yet.
	Load(ctx context.Context, wallet models.UserWallet) (*models.MetadataRecord, error)

	// Save overwrites the replica's record with the given one.
	Save(ctx context.Context, wallet models.UserWallet, record models.MetadataRecord) error

	// AcquireWriteLock obtains the replica's write lease for the wallet,
	// blocking until granted or ctx is done. A no-op on the local replica.
	AcquireWriteLock(ctx context.Context, wallet models.UserWallet) error

	// ReleaseWriteLock drops the write lease. A no-op on the local replica.
	ReleaseWriteLock(ctx context.Context, wallet models.UserWallet) error
}

// ClientMetadataService is the synchronization coordinator. It owns the
// replica set and publishes every pass's outcome as a [models.MetadataState].
type ClientMetadataService interface {
	// Synchronize runs one full pass: loads every replica, merges the
	// records field by field, writes the merged record back to the
	// replicas that diverge from it, and publishes the result.
	//
	// Remote replicas that fail to load are skipped and reported to the
	// [ErrorObserver]; a local load failure aborts the pass. Write-back
	// failures are aggregated into [ErrRemoteSyncFailure] but the merged
	// record is still published and returned.
	Synchronize(ctx context.Context) (models.MetadataRecord, error)

	// Update applies mutate to the wallet's local record (creating an
	// unstamped one when none exists), saves it locally, and then runs a
	// synchronization pass to propagate the change. The mutate callback
	// receives the current wall-clock timestamp to stamp the fields it
	// touches.
	Update(ctx context.Context, mutate func(record *models.MetadataRecord, now int64)) (models.MetadataRecord, error)

	// State returns the most recently published state.
	State() models.MetadataState

	// Subscribe registers an observer channel that receives every
	// published state. Slow consumers miss intermediate states rather
	// than block a pass.
	Subscribe() <-chan models.MetadataState
}

// RecoveryFacade produces the device-bound key share during migration. The
// actual share derivation is delegated to the key-management backend; this
// interface isolates the migration flow from it.
type RecoveryFacade interface {
	CreateDeviceShare(ctx context.Context, wallet models.UserWallet) ([]byte, error)
}

// DeviceShareMigrationService moves a web3 wallet onto a device key share:
// it creates the share, persists it locally, and records the device name in
// the wallet's replicated metadata.
type DeviceShareMigrationService interface {
	// IsMigrationAvailable reports whether migration applies: the user
	// must be a web3 user (nil counts as unknown, hence unavailable) and
	// must not already hold a device share.
	IsMigrationAvailable(isWeb3User *bool, hasDeviceShare bool) bool

	// Migrate performs the migration for the current wallet. Returns
	// [ErrMigrationUnavailable] when the wallet does not qualify.
	Migrate(ctx context.Context) error
}

// ClientSyncJob periodically triggers a synchronization pass in the
// background.
type ClientSyncJob interface {
	// Start launches the background loop with the given interval,
	// replacing a previously running one.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loop and waits for it to exit.
	Stop()
}
