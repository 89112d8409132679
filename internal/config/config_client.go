package config

import (
	"fmt"
	"os"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the base URL of the jobwise server.
	ServerURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// DBPath is the SQLite file holding the saved session.
	DBPath string
}

// ClientWorkers contains client background settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the dashboard reloads analytics.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background refresh settings.
	Workers ClientWorkers
	// LogFile is where client logs are written.
	LogFile string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// Server-only requirements (sign key, DSN) are not checked here.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := load(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			ServerURL:      cfg.Adapter.ServerURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DBPath: cfg.Client.DBPath,
		},
		Workers: ClientWorkers{
			RefreshInterval: cfg.Workers.RefreshInterval,
		},
		LogFile: cfg.Client.LogFile,
	}
}
