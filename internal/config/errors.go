package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, no remote endpoints or a missing request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidStorageConfigs indicates a missing local database path.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidWorkerConfigs indicates a missing sync interval.
	ErrInvalidWorkerConfigs = errors.New("invalid workers configuration")

	// ErrInvalidAuthConfigs indicates a missing token signing key.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
