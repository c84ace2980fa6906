package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrNoWalletSelected is returned when an operation requires a current
	// wallet and none is available or it has no Ethereum address.
	ErrNoWalletSelected = errors.New("no wallet selected")

	// ErrNotWeb3AuthUser is returned when synchronization is requested for a
	// wallet that was not created through web3 social login. Such wallets
	// have no replicated metadata record.
	ErrNotWeb3AuthUser = errors.New("wallet is not a web3 auth wallet")

	// ErrNoMetadataFound is returned when neither the local store nor any
	// reachable remote store holds a record for the wallet.
	ErrNoMetadataFound = errors.New("no metadata record found on any replica")

	// ErrRemoteSyncFailure aggregates write-back failures of a pass. The
	// merged record is still published; the error reports which replicas
	// did not receive it.
	ErrRemoteSyncFailure = errors.New("failed to propagate merged metadata to some replicas")

	// ErrMigrationUnavailable is returned by Migrate when the wallet does
	// not qualify for device-share migration.
	ErrMigrationUnavailable = errors.New("device share migration is not available")
)
