package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (server-side PostgreSQL)
//	-local-dsn local SQLite file path (client-side)
//	-endpoints comma-separated remote store base URLs (client-side)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-adapter-timeout outbound replica call timeout
//	-lease-ttl advisory lock lease TTL
//	-lock-poll lock acquisition poll interval
//	-sync-interval background sync interval
//	-sweep-interval expired lock lease sweep interval (server-side)
//	-device-name device display name
//	-client-id stable client identifier (lock owner)
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var localDSN string
	var endpoints string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var adapterTimeout time.Duration
	var leaseTTL time.Duration
	var lockPoll time.Duration
	var syncInterval time.Duration
	var sweepInterval time.Duration
	var deviceName string
	var clientID string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&localDSN, "local-dsn", "", "Local SQLite file path")
	flag.StringVar(&endpoints, "endpoints", "", "Comma-separated remote store base URLs")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Outbound replica call timeout")
	flag.DurationVar(&leaseTTL, "lease-ttl", 0, "Advisory lock lease TTL")
	flag.DurationVar(&lockPoll, "lock-poll", 0, "Lock acquisition poll interval")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval")
	flag.DurationVar(&sweepInterval, "sweep-interval", 0, "Expired lock lease sweep interval")
	flag.StringVar(&deviceName, "device-name", "", "Device display name")
	flag.StringVar(&clientID, "client-id", "", "Stable client identifier")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			DeviceName: deviceName,
			ClientID:   clientID,
		},
		Auth: Auth{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Local: LocalDB{
				DSN: localDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			Endpoints:      splitEndpoints(endpoints),
			RequestTimeout: adapterTimeout,
		},
		Locks: Locks{
			LeaseTTL:     leaseTTL,
			PollInterval: lockPoll,
		},
		Workers: Workers{
			SyncInterval:  syncInterval,
			SweepInterval: sweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

func splitEndpoints(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	endpoints := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			endpoints = append(endpoints, trimmed)
		}
	}
	return endpoints
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
