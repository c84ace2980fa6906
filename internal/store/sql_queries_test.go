// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/models"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectMetadataQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildSelectMetadataQuery("0xabc")
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, "0xabc", args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from wallet_metadata")
	require.Contains(t, q, "where")
	require.Contains(t, q, "eth_public")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")

	// columns presence (subset / key columns)
	require.Contains(t, q, "payload")
	require.Contains(t, q, "updated_at")
}

func Test_buildUpsertMetadataQuery_SQLContainsParts(t *testing.T) {
	envelope := models.MetadataEnvelope{
		EthPublic: "0xabc",
		Payload:   []byte("blob"),
		UpdatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	query, args, err := buildUpsertMetadataQuery(envelope)
	require.NoError(t, err)

	require.Len(t, args, 3)
	require.Equal(t, envelope.EthPublic, args[0])

	q := strings.ToLower(query)

	require.Contains(t, q, "insert into wallet_metadata")
	require.Contains(t, q, "on conflict (eth_public) do update")
	require.Contains(t, q, "excluded.payload")
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$3")
}

func Test_buildAcquireLockQuery_SQLContainsParts(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	query, args, err := buildAcquireLockQuery("0xabc", "client-1", 30*time.Second, now)
	require.NoError(t, err)

	// eth_public, owner, expires_at, now
	require.Len(t, args, 4)
	require.Equal(t, "0xabc", args[0])
	require.Equal(t, "client-1", args[1])
	require.Equal(t, now.Add(30*time.Second), args[2])
	require.Equal(t, now, args[3])

	q := strings.ToLower(query)

	require.Contains(t, q, "insert into metadata_locks")
	require.Contains(t, q, "on conflict (eth_public) do update")
	// перехват возможен только у своей или истёкшей аренды
	require.Contains(t, q, "metadata_locks.owner = excluded.owner")
	require.Contains(t, q, "metadata_locks.expires_at <=")
	require.Contains(t, q, "returning eth_public, owner, expires_at")
	require.Contains(t, query, "$4")
}

func Test_buildSelectLockQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildSelectLockQuery("0xabc")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "0xabc", args[0])

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from metadata_locks")
	require.Contains(t, q, "owner")
	require.Contains(t, q, "expires_at")
	require.Contains(t, query, "$1")
}

func Test_buildDeleteExpiredLocksQuery_SQLContainsParts(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	query, args, err := buildDeleteExpiredLocksQuery(now)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, now, args[0])

	q := strings.ToLower(query)

	require.Contains(t, q, "delete from metadata_locks")
	require.Contains(t, q, "expires_at <=")
	require.Contains(t, query, "$1")
}

func Test_buildReleaseLockQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildReleaseLockQuery("0xabc", "client-1")
	require.NoError(t, err)

	require.Len(t, args, 2)
	require.ElementsMatch(t, []any{"0xabc", "client-1"}, args)

	q := strings.ToLower(query)

	require.Contains(t, q, "delete from metadata_locks")
	require.Contains(t, q, "eth_public")
	require.Contains(t, q, "owner")
	require.Contains(t, query, "$2")
}
