// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
)

const defaultSweepInterval = time.Minute

// leaseSweeper periodically deletes expired advisory lock leases. Expiry is
// already enforced at acquire time; the sweeper only keeps the lease table
// from accumulating rows for wallets that stopped synchronizing.
type leaseSweeper struct {
	locks    store.LockRepository
	interval time.Duration
	logger   *logger.Logger
}

func newLeaseSweeper(locks store.LockRepository, interval time.Duration, logger *logger.Logger) *leaseSweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}

	return &leaseSweeper{
		locks:    locks,
		interval: interval,
		logger:   logger,
	}
}

// Run implements [Worker]. It spawns the sweep loop and returns immediately.
func (s *leaseSweeper) Run() {
	go s.loop(context.Background())
}

func (s *leaseSweeper) loop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *leaseSweeper) sweep(ctx context.Context) {
	deleted, err := s.locks.DeleteExpiredLocks(ctx)
	if err != nil {
		s.logger.Err(err).Msg("error sweeping expired lock leases")
		return
	}

	if deleted > 0 {
		s.logger.Debug().Int64("deleted", deleted).Msg("swept expired lock leases")
	}
}
