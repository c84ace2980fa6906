// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/adapter"
	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// remoteReplica is a server-backed participant of synchronization. The
// payload travels and rests encrypted with the seed-derived key; the server
// only ever sees opaque bytes.
type remoteReplica struct {
	remote adapter.RemoteStore
	cipher crypto.MetadataCipher
	logger *logger.Logger
}

// NewRemoteReplica constructs a [Replica] over one remote store endpoint.
func NewRemoteReplica(remote adapter.RemoteStore, cipher crypto.MetadataCipher, logger *logger.Logger) Replica {
	return &remoteReplica{
		remote: remote,
		cipher: cipher,
		logger: logger,
	}
}

func (r *remoteReplica) Name() string { return r.remote.Name() }

func (r *remoteReplica) Local() bool { return false }

// Load implements [Replica]. A 404 means the server simply has no record for
// the wallet yet and is reported as (nil, nil).
func (r *remoteReplica) Load(ctx context.Context, wallet models.UserWallet) (*models.MetadataRecord, error) {
	ethPublic, err := walletAddress(wallet)
	if err != nil {
		return nil, err
	}

	envelope, err := r.remote.GetMetadata(ctx, ethPublic)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load metadata from %s: %w", r.Name(), err)
	}

	plaintext, err := r.cipher.Decrypt(wallet.SeedPhrase, envelope.Payload)
	if err != nil {
		return nil, fmt.Errorf("decrypt metadata from %s: %w", r.Name(), err)
	}

	record, err := models.DeserializeMetadata(plaintext, ethPublic)
	if err != nil {
		return nil, fmt.Errorf("decode metadata from %s: %w", r.Name(), err)
	}

	return &record, nil
}

// Save implements [Replica].
func (r *remoteReplica) Save(ctx context.Context, wallet models.UserWallet, record models.MetadataRecord) error {
	ethPublic, err := walletAddress(wallet)
	if err != nil {
		return err
	}

	plaintext, err := record.Serialize()
	if err != nil {
		return fmt.Errorf("encode metadata for %s: %w", r.Name(), err)
	}

	blob, err := r.cipher.Encrypt(wallet.SeedPhrase, plaintext)
	if err != nil {
		return fmt.Errorf("encrypt metadata for %s: %w", r.Name(), err)
	}

	if err := r.remote.SaveMetadata(ctx, models.MetadataEnvelope{EthPublic: ethPublic, Payload: blob}); err != nil {
		return fmt.Errorf("save metadata to %s: %w", r.Name(), err)
	}

	return nil
}

// AcquireWriteLock implements [Replica].
func (r *remoteReplica) AcquireWriteLock(ctx context.Context, wallet models.UserWallet) error {
	ethPublic, err := walletAddress(wallet)
	if err != nil {
		return err
	}

	if _, err := r.remote.AcquireLock(ctx, ethPublic); err != nil {
		return fmt.Errorf("acquire write lock on %s: %w", r.Name(), err)
	}

	return nil
}

// ReleaseWriteLock implements [Replica].
func (r *remoteReplica) ReleaseWriteLock(ctx context.Context, wallet models.UserWallet) error {
	ethPublic, err := walletAddress(wallet)
	if err != nil {
		return err
	}

	if err := r.remote.ReleaseLock(ctx, ethPublic); err != nil {
		return fmt.Errorf("release write lock on %s: %w", r.Name(), err)
	}

	return nil
}
