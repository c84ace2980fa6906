// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the business logic of the application, split into
// a server side and a client side.
//
// Server side: [MetadataStoreService] validates and persists opaque metadata
// envelopes, [LockService] manages the per-wallet advisory write lease.
//
// Client side: [ClientMetadataService] is the synchronization coordinator
// that loads every replica, merges the records field by field, and writes the
// merged result back to the replicas that diverge from it.
// [DeviceShareMigrationService] moves a web3 wallet onto a device key share.
package service

import (
	"context"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// MetadataStoreService is the server-side envelope store. Payloads are
// opaque: all merge logic lives on the client, the server only keyed-stores
// the latest uploaded bytes.
type MetadataStoreService interface {
	// GetMetadata returns the stored envelope for the wallet address.
	// Returns [store.ErrMetadataNotFound] if no record exists yet.
	GetMetadata(ctx context.Context, ethPublic string) (models.MetadataEnvelope, error)

	// SaveMetadata validates and upserts the envelope.
	SaveMetadata(ctx context.Context, envelope models.MetadataEnvelope) error
}

// LockService manages the per-wallet advisory write lease on the server.
type LockService interface {
	// AcquireLock grants the lease for ethPublic to owner for the
	// configured TTL. Returns [store.ErrLockHeld] while a live lease
	// belongs to someone else.
	AcquireLock(ctx context.Context, ethPublic, owner string) (models.LockState, error)

	// ReleaseLock drops the lease if owner holds it.
	ReleaseLock(ctx context.Context, ethPublic, owner string) error
}
