// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

// walletSession is an in-memory [CurrentUserWallet]: the client app stores
// the unlocked wallet here after the user enters the seed phrase.
type walletSession struct {
	mu     sync.RWMutex
	wallet models.UserWallet
	set    bool
}

// NewWalletSession constructs an empty wallet session.
func NewWalletSession() *walletSession {
	return &walletSession{}
}

// SetUserWallet stores the unlocked wallet for subsequent passes.
func (s *walletSession) SetUserWallet(wallet models.UserWallet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wallet = wallet
	s.set = true
}

// GetUserWallet implements [CurrentUserWallet].
func (s *walletSession) GetUserWallet(ctx context.Context) (models.UserWallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.set {
		return models.UserWallet{}, ErrNoWalletSelected
	}
	return s.wallet, nil
}
