// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalMetadataRepository is the SQLite-backed client-side replica store.
// It holds the encrypted metadata blob for each wallet the device has seen.
type LocalMetadataRepository interface {
	// GetMetadata returns the encrypted blob for ethPublic.
	// Returns [ErrMetadataNotFound] if the wallet has no local record.
	GetMetadata(ctx context.Context, ethPublic string) ([]byte, error)

	// SaveMetadata upserts the encrypted blob for ethPublic.
	SaveMetadata(ctx context.Context, ethPublic string, blob []byte) error
}

// DeviceShareRepository persists the device key share on the client.
// The share is the device-bound fragment of the wallet key; its presence
// marks the device as already migrated.
type DeviceShareRepository interface {
	// GetDeviceShare returns the stored share for ethPublic.
	// Returns [ErrDeviceShareNotFound] if none is stored.
	GetDeviceShare(ctx context.Context, ethPublic string) ([]byte, error)

	// SaveDeviceShare upserts the share for ethPublic.
	SaveDeviceShare(ctx context.Context, ethPublic string, share []byte) error

	// HasDeviceShare reports whether a share is stored for ethPublic.
	HasDeviceShare(ctx context.Context, ethPublic string) (bool, error)
}
