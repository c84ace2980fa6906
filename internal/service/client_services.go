package service

import (
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/adapter"
	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
)

type ClientServices struct {
	WalletSession    *walletSession
	MetadataService  ClientMetadataService
	MigrationService DeviceShareMigrationService
	SyncJob          ClientSyncJob
	ErrorObserver    ErrorObserver
}

// NewClientServices wires the client service layer: one local replica over
// the SQLite store, one remote replica per configured endpoint (in config
// order, which is the merge fold order), the coordinator over all of them,
// and the migration flow on top.
func NewClientServices(storages *store.ClientStorages, cfg config.ClientConfig, logger *logger.Logger) (*ClientServices, error) {
	cipher := crypto.NewMetadataCipher()
	session := NewWalletSession()
	observer := NewLoggingErrorObserver(logger)

	// without a stable client id the advisory lock owner would collide
	// across devices
	if cfg.App.ClientID == "" {
		cfg.App.ClientID = utils.NewUUIDGenerator().Generate()
		logger.Info().Str("clientID", cfg.App.ClientID).Msg("no client id configured, generated a new one")
	}

	replicas := make([]Replica, 0, len(cfg.Adapter.Endpoints)+1)
	replicas = append(replicas, NewLocalReplica(storages.MetadataRepository, cipher, logger))

	for _, endpoint := range cfg.Adapter.Endpoints {
		remote, err := adapter.NewHTTPRemoteStore(endpoint, cfg.Adapter, cfg.Auth, cfg.App, logger)
		if err != nil {
			return nil, fmt.Errorf("create remote store for %q: %w", endpoint, err)
		}
		replicas = append(replicas, NewRemoteReplica(remote, cipher, logger))
	}

	metadataSvc := NewClientMetadataService(session, replicas, observer, logger)
	migrationSvc := NewDeviceShareMigrationService(
		session,
		storages.DeviceShareRepository,
		NewRecoveryFacade(),
		metadataSvc,
		cfg.App.DeviceName,
		observer,
		logger,
	)

	return &ClientServices{
		WalletSession:    session,
		MetadataService:  metadataSvc,
		MigrationService: migrationSvc,
		SyncJob:          NewClientSyncJob(metadataSvc),
		ErrorObserver:    observer,
	}, nil
}
