package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrMetadataNotFound is returned when no metadata record exists for
	// the requested wallet address.
	ErrMetadataNotFound = errors.New("wallet metadata was not found")

	// ErrMetadataNotSaved is returned when an INSERT/UPDATE completes
	// without error but the number of affected rows is zero, indicating
	// that nothing was actually persisted.
	ErrMetadataNotSaved = errors.New("wallet metadata was not saved")

	// ErrLockHeld is returned when the advisory write lock for a wallet is
	// currently leased to a different owner and the lease has not expired.
	ErrLockHeld = errors.New("write lock is held by another client")

	// ErrLockNotOwned is returned when a release targets a lock leased to
	// a different owner. Releasing an absent lock is not an error.
	ErrLockNotOwned = errors.New("write lock is owned by another client")

	// ErrDeviceShareNotFound is returned when the local store holds no
	// cached device share.
	ErrDeviceShareNotFound = errors.New("device share was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
