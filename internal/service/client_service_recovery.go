// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

const deviceShareSize = 32

// recoveryFacade is the default [RecoveryFacade]: it generates a random
// device share. A deployment with a threshold key backend substitutes its own
// implementation.
type recoveryFacade struct{}

// NewRecoveryFacade constructs the default [RecoveryFacade].
func NewRecoveryFacade() RecoveryFacade {
	return &recoveryFacade{}
}

// CreateDeviceShare implements [RecoveryFacade].
func (f *recoveryFacade) CreateDeviceShare(ctx context.Context, wallet models.UserWallet) ([]byte, error) {
	if _, err := walletAddress(wallet); err != nil {
		return nil, err
	}

	share := make([]byte, deviceShareSize)
	if _, err := rand.Read(share); err != nil {
		return nil, fmt.Errorf("generate device share: %w", err)
	}

	return share, nil
}
