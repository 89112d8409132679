package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/jobwise/internal/adapter"
	"github.com/MKhiriev/jobwise/internal/client"
	"github.com/MKhiriev/jobwise/internal/config"
	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/MKhiriev/jobwise/internal/service"
	"github.com/MKhiriev/jobwise/internal/store"
	"github.com/MKhiriev/jobwise/internal/tui"
	"github.com/MKhiriev/jobwise/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "jobwise: %v\n", err)
		os.Exit(1)
	}
}

// run keeps deferred cleanups alive; the terminal belongs to the TUI, so
// logs go to a file.
func run() error {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log, logCloser, err := logger.NewFileLogger("jobwise-client", cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logCloser.Close()

	log.Info().Str("build", buildInfo.String()).Str("server", cfg.Adapter.ServerURL).Msg("client starting")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, serverAdapter, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}

	var app client.Client
	app, err = client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	if err = app.Run(); err != nil {
		log.Err(err).Msg("client run error")
		return err
	}
	return nil
}
