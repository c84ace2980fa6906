package workers

import (
	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the server's background workers. Currently the only
// worker is the expired lock-lease sweeper.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	logger.Info().Msg("creating background workers...")

	return &Workers{
		workers: []Worker{
			newLeaseSweeper(storages.LockRepository, cfg.SweepInterval, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
