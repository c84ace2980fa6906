package models

import "time"

// MetadataEnvelope is the wire form of one stored record on the metadata KV
// server. The payload is the JSON serialization of a MetadataRecord; the
// server never inspects it beyond byte equality.
type MetadataEnvelope struct {
	// EthPublic is the wallet address the record is keyed by.
	EthPublic string `json:"eth_public"`

	// Payload is the serialized metadata record.
	Payload []byte `json:"payload"`

	// UpdatedAt is the server-side time of the last successful save.
	// Informational only; merge decisions use the per-field timestamps
	// inside the payload.
	UpdatedAt time.Time `json:"updated_at"`
}

// LockState describes the current holder of a wallet's advisory lock.
type LockState struct {
	EthPublic string    `json:"eth_public"`
	Owner     string    `json:"owner"`
	ExpiresAt time.Time `json:"expires_at"`
}
