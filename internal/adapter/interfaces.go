// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// metadata KV servers.
//
// The primary abstraction is [RemoteStore], which decouples the replica layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPRemoteStore]); one RemoteStore is constructed per configured
// endpoint, so a multi-replica deployment is a slice of adapters.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

// RemoteStore defines transport-agnostic communication with a single metadata
// KV server. Implementations are responsible for serialisation, per-request
// authentication, and mapping transport-level errors to the sentinel values
// defined in this package.
type RemoteStore interface {
	// Name returns a stable human-readable identifier of the endpoint,
	// used in replica naming and log fields.
	Name() string

	// GetMetadata fetches the stored envelope for the wallet address.
	// Returns [ErrNotFound] (wrapped) if the server has no record yet.
	GetMetadata(ctx context.Context, ethPublic string) (models.MetadataEnvelope, error)

	// SaveMetadata uploads the envelope, overwriting the server-side record.
	SaveMetadata(ctx context.Context, envelope models.MetadataEnvelope) error

	// AcquireLock obtains the server-side write lease for the wallet,
	// polling while the lease is held elsewhere. It returns the granted
	// lease, or the context error once ctx is cancelled.
	AcquireLock(ctx context.Context, ethPublic string) (models.LockState, error)

	// ReleaseLock drops the write lease held by this client. Releasing an
	// absent lease is a no-op.
	ReleaseLock(ctx context.Context, ethPublic string) error
}
