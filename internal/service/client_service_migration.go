// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// deviceShareMigrationService is the concrete implementation of
// [DeviceShareMigrationService].
type deviceShareMigrationService struct {
	wallet     CurrentUserWallet
	shares     store.DeviceShareRepository
	facade     RecoveryFacade
	metadata   ClientMetadataService
	deviceName string
	observer   ErrorObserver
	logger     *logger.Logger
}

// NewDeviceShareMigrationService constructs a [DeviceShareMigrationService].
// deviceName is this device's display name, written into the replicated
// metadata once the share is in place.
func NewDeviceShareMigrationService(
	wallet CurrentUserWallet,
	shares store.DeviceShareRepository,
	facade RecoveryFacade,
	metadata ClientMetadataService,
	deviceName string,
	observer ErrorObserver,
	logger *logger.Logger,
) DeviceShareMigrationService {
	return &deviceShareMigrationService{
		wallet:     wallet,
		shares:     shares,
		facade:     facade,
		metadata:   metadata,
		deviceName: deviceName,
		observer:   observer,
		logger:     logger,
	}
}

// IsMigrationAvailable implements [DeviceShareMigrationService]. A nil
// isWeb3User means the auth state is not known yet, which counts as not
// eligible rather than an error.
func (s *deviceShareMigrationService) IsMigrationAvailable(isWeb3User *bool, hasDeviceShare bool) bool {
	return isWeb3User != nil && *isWeb3User && !hasDeviceShare
}

// Migrate implements [DeviceShareMigrationService]: create the device share,
// persist it, then record this device's name in the replicated metadata. The
// metadata update triggers a synchronization pass, so other devices learn
// about the migration on their next sync.
func (s *deviceShareMigrationService) Migrate(ctx context.Context) error {
	log := logger.FromContext(ctx)

	wallet, err := s.wallet.GetUserWallet(ctx)
	if err != nil {
		return fmt.Errorf("get current wallet: %w", err)
	}

	ethPublic, err := walletAddress(wallet)
	if err != nil {
		return err
	}

	hasShare, err := s.shares.HasDeviceShare(ctx, ethPublic)
	if err != nil {
		return fmt.Errorf("check device share: %w", err)
	}

	isWeb3 := wallet.IsWeb3AuthUser()
	if !s.IsMigrationAvailable(&isWeb3, hasShare) {
		return ErrMigrationUnavailable
	}

	share, err := s.facade.CreateDeviceShare(ctx, wallet)
	if err != nil {
		s.observer.ObserveError(ctx, fmt.Errorf("create device share: %w", err))
		return fmt.Errorf("create device share: %w", err)
	}

	if err := s.shares.SaveDeviceShare(ctx, ethPublic, share); err != nil {
		s.observer.ObserveError(ctx, fmt.Errorf("persist device share: %w", err))
		return fmt.Errorf("persist device share: %w", err)
	}

	log.Info().Str("ethPublic", ethPublic).Msg("device share created, updating device name")

	if _, err := s.metadata.Update(ctx, func(record *models.MetadataRecord, now int64) {
		record.SetDeviceName(s.deviceName, now)
	}); err != nil {
		// the share is already in place; the metadata catches up on a
		// later pass
		s.observer.ObserveError(ctx, fmt.Errorf("record device name after migration: %w", err))
		return fmt.Errorf("record device name after migration: %w", err)
	}

	return nil
}
