// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// clientMetadataService is the concrete implementation of
// [ClientMetadataService]. It holds the replica set in a fixed order — local
// first, then remotes as configured — because the merge tie-break is only
// deterministic for a stable fold order.
type clientMetadataService struct {
	wallet   CurrentUserWallet
	replicas []Replica
	observer ErrorObserver
	logger   *logger.Logger
	now      func() int64

	// passMu serializes synchronization passes; concurrent Synchronize
	// calls queue up instead of interleaving write-backs.
	passMu sync.Mutex

	mu          sync.RWMutex
	state       models.MetadataState
	subscribers []chan models.MetadataState
}

// NewClientMetadataService constructs the synchronization coordinator over
// the given replica set. The slice order is the merge fold order.
func NewClientMetadataService(wallet CurrentUserWallet, replicas []Replica, observer ErrorObserver, logger *logger.Logger) ClientMetadataService {
	return &clientMetadataService{
		wallet:   wallet,
		replicas: replicas,
		observer: observer,
		logger:   logger,
		now:      func() int64 { return time.Now().Unix() },
		state:    models.MetadataState{Status: models.SyncStatusIdle},
	}
}

// Synchronize implements [ClientMetadataService].
//
// The pass runs in four phases: precondition check, concurrent loads,
// sequential merge fold, write-back. Loads run concurrently because replicas
// are independent; the fold is sequential because the tie-break depends on
// the order records enter the merge.
func (s *clientMetadataService) Synchronize(ctx context.Context) (models.MetadataRecord, error) {
	s.passMu.Lock()
	defer s.passMu.Unlock()

	return s.runPass(ctx)
}

// runPass executes one synchronization pass. The caller holds passMu.
func (s *clientMetadataService) runPass(ctx context.Context) (models.MetadataRecord, error) {
	log := logger.FromContext(ctx)

	wallet, err := s.wallet.GetUserWallet(ctx)
	if err != nil {
		err = fmt.Errorf("get current wallet: %w", err)
		s.observer.ObserveError(ctx, err)
		return models.MetadataRecord{}, s.failPass(err)
	}
	if !wallet.IsWeb3AuthUser() {
		s.observer.ObserveError(ctx, ErrNotWeb3AuthUser)
		return models.MetadataRecord{}, s.failPass(ErrNotWeb3AuthUser)
	}

	s.publish(models.SyncStatusFetching, nil, nil)

	records := make([]*models.MetadataRecord, len(s.replicas))
	loadErrs := make([]error, len(s.replicas))

	var wg sync.WaitGroup
	for i, replica := range s.replicas {
		wg.Add(1)
		go func(i int, replica Replica) {
			defer wg.Done()
			records[i], loadErrs[i] = replica.Load(ctx, wallet)
		}(i, replica)
	}
	wg.Wait()

	for i, replica := range s.replicas {
		loadErr := loadErrs[i]
		if loadErr == nil {
			continue
		}
		if replica.Local() {
			// without the local record the pass has no trustworthy base
			return models.MetadataRecord{}, s.failPass(fmt.Errorf("load local replica: %w", loadErr))
		}

		log.Warn().Str("replica", replica.Name()).Err(loadErr).Msg("replica unreachable, skipping for this pass")
		s.observer.ObserveError(ctx, fmt.Errorf("replica %s skipped: %w", replica.Name(), loadErr))
		records[i] = nil
	}

	var merged *models.MetadataRecord
	for i := range s.replicas {
		record := records[i]
		if record == nil {
			continue
		}
		if merged == nil {
			m := *record
			merged = &m
			continue
		}

		m, mergeErr := models.MergeMetadata(*merged, *record)
		if mergeErr != nil {
			return models.MetadataRecord{}, s.failPass(fmt.Errorf("merge record from %s: %w", s.replicas[i].Name(), mergeErr))
		}
		merged = &m
	}
	if merged == nil {
		return models.MetadataRecord{}, s.failPass(ErrNoMetadataFound)
	}

	var writeErrs []error
	for i, replica := range s.replicas {
		if loadErrs[i] != nil {
			// a skipped replica's state is unknown; it catches up next pass
			continue
		}
		if records[i] != nil && records[i].Equal(*merged) {
			continue
		}

		if writeErr := s.writeBack(ctx, replica, wallet, *merged); writeErr != nil {
			s.observer.ObserveError(ctx, writeErr)
			writeErrs = append(writeErrs, writeErr)
		}
	}

	var passErr error
	if len(writeErrs) > 0 {
		passErr = fmt.Errorf("%w: %w", ErrRemoteSyncFailure, errors.Join(writeErrs...))
	}

	// the merged record is the best available truth even when some
	// write-backs failed
	s.publish(models.SyncStatusReady, merged, passErr)

	return *merged, passErr
}

// writeBack pushes the merged record to one replica. Remote writes are
// bracketed by the replica's write lease; the lease is released on every
// path, including a failed save.
func (s *clientMetadataService) writeBack(ctx context.Context, replica Replica, wallet models.UserWallet, record models.MetadataRecord) error {
	if replica.Local() {
		if err := replica.Save(ctx, wallet, record); err != nil {
			return fmt.Errorf("write back to %s: %w", replica.Name(), err)
		}
		return nil
	}

	if err := replica.AcquireWriteLock(ctx, wallet); err != nil {
		return fmt.Errorf("write back to %s: %w", replica.Name(), err)
	}
	defer func() {
		if err := replica.ReleaseWriteLock(ctx, wallet); err != nil {
			s.observer.ObserveError(ctx, err)
		}
	}()

	if err := replica.Save(ctx, wallet, record); err != nil {
		return fmt.Errorf("write back to %s: %w", replica.Name(), err)
	}

	return nil
}

// Update implements [ClientMetadataService].
//
// The whole read-modify-write runs under the pass mutex so a background
// pass cannot interleave between the local load and save.
func (s *clientMetadataService) Update(ctx context.Context, mutate func(record *models.MetadataRecord, now int64)) (models.MetadataRecord, error) {
	s.passMu.Lock()
	defer s.passMu.Unlock()

	wallet, err := s.wallet.GetUserWallet(ctx)
	if err != nil {
		return models.MetadataRecord{}, fmt.Errorf("get current wallet: %w", err)
	}
	if !wallet.IsWeb3AuthUser() {
		return models.MetadataRecord{}, ErrNotWeb3AuthUser
	}

	local := s.localReplica()
	if local == nil {
		return models.MetadataRecord{}, errors.New("no local replica configured")
	}

	record, err := local.Load(ctx, wallet)
	if err != nil {
		return models.MetadataRecord{}, fmt.Errorf("load local replica: %w", err)
	}
	if record == nil {
		// unstamped fields lose any merge against stamped remote values
		fresh := models.MetadataRecord{EthPublic: *wallet.EthAddress}
		record = &fresh
	}

	mutate(record, s.now())

	if err := local.Save(ctx, wallet, *record); err != nil {
		return models.MetadataRecord{}, fmt.Errorf("save local replica: %w", err)
	}

	return s.runPass(ctx)
}

// State implements [ClientMetadataService].
func (s *clientMetadataService) State() models.MetadataState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe implements [ClientMetadataService].
func (s *clientMetadataService) Subscribe() <-chan models.MetadataState {
	ch := make(chan models.MetadataState, 8)

	s.mu.Lock()
	s.subscribers = append(s.subscribers, ch)
	s.mu.Unlock()

	return ch
}

func (s *clientMetadataService) localReplica() Replica {
	for _, replica := range s.replicas {
		if replica.Local() {
			return replica
		}
	}
	return nil
}

func (s *clientMetadataService) failPass(err error) error {
	s.publish(models.SyncStatusReady, nil, err)
	return err
}

// publish records the new state and fans it out. A nil value keeps the last
// known-good record so observers never regress to "no data" on a failed pass.
func (s *clientMetadataService) publish(status models.SyncStatus, value *models.MetadataRecord, err error) {
	s.mu.Lock()
	if value == nil {
		value = s.state.Value
	}
	state := models.MetadataState{Status: status, Value: value, Err: err}
	s.state = state

	subscribers := make([]chan models.MetadataState, len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, ch := range subscribers {
		select {
		case ch <- state:
		default:
			// slow consumer misses this state instead of blocking the pass
		}
	}
}
