package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, json.Unmarshal([]byte(`"1h30m"`), &d))
	assert.Equal(t, 90*time.Minute, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	require.Error(t, json.Unmarshal([]byte(`"bogus"`), &d))
}

func TestParseJSON_MapsAllSections(t *testing.T) {
	var jsonCfg StructuredJSONConfig
	jsonCfg.App.DeviceName = "MacBook Pro"
	jsonCfg.Auth.TokenSignKey = "secret"
	jsonCfg.Storage.DB.DSN = "postgres://localhost/meta"
	jsonCfg.Storage.Local.DSN = "/tmp/wallet.db"
	jsonCfg.Adapter.Endpoints = []string{"http://a:8080"}
	jsonCfg.Adapter.RequestTimeout = Duration(15 * time.Second)
	jsonCfg.Workers.SyncInterval = Duration(5 * time.Minute)
	path := writeTempJSONConfig(t, jsonCfg)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "MacBook Pro", cfg.App.DeviceName)
	assert.Equal(t, "secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "postgres://localhost/meta", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/wallet.db", cfg.Storage.Local.DSN)
	assert.Equal(t, []string{"http://a:8080"}, cfg.Adapter.Endpoints)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/definitely/not/there.json")
	require.Error(t, err)
}
