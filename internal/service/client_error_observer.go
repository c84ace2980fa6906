// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
)

const observedErrorsKept = 32

// loggingErrorObserver is the default [ErrorObserver]: every observed error
// is logged at warn level and kept in a small ring so the client app can show
// recent sync problems on demand.
type loggingErrorObserver struct {
	logger *logger.Logger

	mu     sync.Mutex
	recent []error
}

// NewLoggingErrorObserver constructs the default [ErrorObserver].
func NewLoggingErrorObserver(logger *logger.Logger) *loggingErrorObserver {
	return &loggingErrorObserver{logger: logger}
}

// ObserveError implements [ErrorObserver].
func (o *loggingErrorObserver) ObserveError(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn().Err(err).Msg("synchronization problem observed")

	o.mu.Lock()
	defer o.mu.Unlock()
	o.recent = append(o.recent, err)
	if len(o.recent) > observedErrorsKept {
		o.recent = o.recent[len(o.recent)-observedErrorsKept:]
	}
}

// RecentErrors returns a copy of the most recently observed errors, newest
// last.
func (o *loggingErrorObserver) RecentErrors() []error {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]error, len(o.recent))
	copy(out, o.recent)
	return out
}
