// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getLocalMetadata = `
		SELECT blob
		FROM wallet_metadata
		WHERE eth_public = $1;`

	saveLocalMetadata = `
		INSERT INTO wallet_metadata (eth_public, blob, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (eth_public) DO UPDATE SET
			blob       = excluded.blob,
			updated_at = CURRENT_TIMESTAMP;`

	getDeviceShare = `
		SELECT share
		FROM device_shares
		WHERE eth_public = $1;`

	saveDeviceShare = `
		INSERT INTO device_shares (eth_public, share, created_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (eth_public) DO UPDATE SET
			share = excluded.share;`

	countDeviceShares = `
		SELECT COUNT(1)
		FROM device_shares
		WHERE eth_public = $1;`
)
