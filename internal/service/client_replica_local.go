// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// localReplica is the on-device participant of synchronization. Records are
// stored as blobs encrypted with a key derived from the wallet's seed phrase,
// so a stolen database file is useless without the phrase.
type localReplica struct {
	store  store.LocalMetadataRepository
	cipher crypto.MetadataCipher
	logger *logger.Logger
}

// NewLocalReplica constructs the on-device [Replica] over the SQLite store.
func NewLocalReplica(store store.LocalMetadataRepository, cipher crypto.MetadataCipher, logger *logger.Logger) Replica {
	return &localReplica{
		store:  store,
		cipher: cipher,
		logger: logger,
	}
}

func (r *localReplica) Name() string { return "local" }

func (r *localReplica) Local() bool { return true }

// Load implements [Replica]. A wallet that has never synced on this device
// has no blob; that is reported as (nil, nil), not an error.
func (r *localReplica) Load(ctx context.Context, wallet models.UserWallet) (*models.MetadataRecord, error) {
	ethPublic, err := walletAddress(wallet)
	if err != nil {
		return nil, err
	}

	blob, err := r.store.GetMetadata(ctx, ethPublic)
	if err != nil {
		if errors.Is(err, store.ErrMetadataNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load local metadata: %w", err)
	}

	plaintext, err := r.cipher.Decrypt(wallet.SeedPhrase, blob)
	if err != nil {
		return nil, fmt.Errorf("decrypt local metadata: %w", err)
	}

	record, err := models.DeserializeMetadata(plaintext, ethPublic)
	if err != nil {
		return nil, fmt.Errorf("decode local metadata: %w", err)
	}

	return &record, nil
}

// Save implements [Replica].
func (r *localReplica) Save(ctx context.Context, wallet models.UserWallet, record models.MetadataRecord) error {
	ethPublic, err := walletAddress(wallet)
	if err != nil {
		return err
	}

	plaintext, err := record.Serialize()
	if err != nil {
		return fmt.Errorf("encode local metadata: %w", err)
	}

	blob, err := r.cipher.Encrypt(wallet.SeedPhrase, plaintext)
	if err != nil {
		return fmt.Errorf("encrypt local metadata: %w", err)
	}

	if err := r.store.SaveMetadata(ctx, ethPublic, blob); err != nil {
		return fmt.Errorf("save local metadata: %w", err)
	}

	return nil
}

// AcquireWriteLock implements [Replica]. The local store has a single writer,
// so there is nothing to lock.
func (r *localReplica) AcquireWriteLock(ctx context.Context, wallet models.UserWallet) error {
	return nil
}

// ReleaseWriteLock implements [Replica].
func (r *localReplica) ReleaseWriteLock(ctx context.Context, wallet models.UserWallet) error {
	return nil
}

func walletAddress(wallet models.UserWallet) (string, error) {
	if wallet.EthAddress == nil || *wallet.EthAddress == "" {
		return "", ErrNoWalletSelected
	}
	return *wallet.EthAddress, nil
}
