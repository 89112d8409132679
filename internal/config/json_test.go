package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRawJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeRawJSON(t, `{
		"app": {
			"token_sign_key": "sign",
			"token_issuer": "iss",
			"token_duration": "24h",
			"bcrypt_cost": 12,
			"version": "1.0.0"
		},
		"storage": {
			"db": {"dsn": "postgres://json"},
			"cache": {"address": "redis:6379", "password": "pw", "db": 1, "ttl": "1m"}
		},
		"server": {"http_address": ":8080", "grpc_address": ":9090", "request_timeout": "10s"},
		"adapter": {"server_url": "https://jobwise.example", "request_timeout": 3000000000},
		"workers": {"refresh_interval": "2m"},
		"client": {"db_path": "s.db", "log_file": "c.log"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, "iss", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 12, cfg.App.BcryptCost)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "postgres://json", cfg.Storage.DB.DSN)
	assert.Equal(t, "redis:6379", cfg.Storage.Cache.Address)
	assert.Equal(t, "pw", cfg.Storage.Cache.Password)
	assert.Equal(t, 1, cfg.Storage.Cache.DB)
	assert.Equal(t, time.Minute, cfg.Storage.Cache.TTL)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, ":9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://jobwise.example", cfg.Adapter.ServerURL)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, "s.db", cfg.Client.DBPath)
	assert.Equal(t, "c.log", cfg.Client.LogFile)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
	t.Run("malformed json", func(t *testing.T) {
		_, err := parseJSON(writeRawJSON(t, `{"app":`))
		assert.Error(t, err)
	})
	t.Run("bad duration", func(t *testing.T) {
		_, err := parseJSON(writeRawJSON(t, `{"server":{"request_timeout":"soon"}}`))
		assert.Error(t, err)
	})
	t.Run("duration of wrong type", func(t *testing.T) {
		_, err := parseJSON(writeRawJSON(t, `{"server":{"request_timeout":true}}`))
		assert.Error(t, err)
	})
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(data))
}
