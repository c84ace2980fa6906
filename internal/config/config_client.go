package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// DeviceName is this device's display name, used during device-share
	// migration.
	DeviceName string
	// ClientID is the stable identifier used as the advisory lock owner.
	ClientID string
}

// ClientAuth holds token minting settings for outbound replica calls.
type ClientAuth struct {
	// TokenSignKey is the HMAC key shared with the metadata KV server.
	TokenSignKey string
	// TokenIssuer is the "iss" claim of minted tokens.
	TokenIssuer string
	// TokenDuration is the validity window of minted tokens.
	TokenDuration time.Duration
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// Endpoints lists remote store base URLs in merge order.
	Endpoints []string
	// RequestTimeout is the default timeout for outbound replica requests.
	RequestTimeout time.Duration
	// LockPollInterval is how often a contended lock is re-requested.
	LockPollInterval time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Local holds the on-device SQLite settings.
	Local LocalDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the background sync worker runs.
	SyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Auth contains token minting settings.
	Auth ClientAuth
	// Adapter contains remote store endpoints and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			DeviceName: cfg.App.DeviceName,
			ClientID:   cfg.App.ClientID,
		},
		Auth: ClientAuth{
			TokenSignKey:  cfg.Auth.TokenSignKey,
			TokenIssuer:   cfg.Auth.TokenIssuer,
			TokenDuration: cfg.Auth.TokenDuration,
		},
		Adapter: ClientAdapter{
			Endpoints:        cfg.Adapter.Endpoints,
			RequestTimeout:   cfg.Adapter.RequestTimeout,
			LockPollInterval: cfg.Locks.PollInterval,
		},
		Storage: ClientStorage{
			Local: LocalDB{
				DSN: cfg.Storage.Local.DSN,
			},
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}

	return clientCfg, clientCfg.validate()
}
