package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Host: "", Port: 8080}, expected: ":8080"},
		{name: "ipv6 host", addr: NetAddress{Host: "::1", Port: 8080}, expected: "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected NetAddress
		wantErr  bool
	}{
		{name: "localhost", input: "localhost:8080", expected: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "127.0.0.1:9090", expected: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8080", expected: NetAddress{Host: "", Port: 8080}},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non-numeric port", input: "localhost:http", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "hostname not allowed", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, a)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "localhost:8080",
		"-grpc-address", "127.0.0.1:9090",
		"-d", "postgres://flags",
		"-redis-address", "localhost:6379",
		"-cache-ttl", "3m",
		"-c", "/etc/jobwise.json",
		"-token-sign-key", "sign",
		"-token-issuer", "iss",
		"-token-duration", "2h",
		"-bcrypt-cost", "11",
		"-request-timeout", "15s",
		"-s", "http://api.local",
		"-client-timeout", "4s",
		"-refresh", "20s",
		"-db-path", "session.db",
		"-log-file", "client.log",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://flags", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:6379", cfg.Storage.Cache.Address)
	assert.Equal(t, 3*time.Minute, cfg.Storage.Cache.TTL)
	assert.Equal(t, "/etc/jobwise.json", cfg.JSONFilePath)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, "iss", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 11, cfg.App.BcryptCost)
	assert.Equal(t, "http://api.local", cfg.Adapter.ServerURL)
	assert.Equal(t, 4*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 20*time.Second, cfg.Workers.RefreshInterval)
	assert.Equal(t, "session.db", cfg.Client.DBPath)
	assert.Equal(t, "client.log", cfg.Client.LogFile)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-config", "/alias.json"})
	require.NoError(t, err)
	assert.Equal(t, "/alias.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := [][]string{
		{"-a", "nonsense"},
		{"-token-duration", "forever"},
		{"-bcrypt-cost", "high"},
		{"-no-such-flag"},
	}

	for _, args := range tests {
		_, err := ParseFlags(args)
		assert.Error(t, err, "args %v", args)
	}
}
