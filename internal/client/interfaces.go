// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"time"

	"github.com/MKhiriev/jobwise/models"
)

// Client is what cmd/client runs.
type Client interface {
	Run() error
}

// UI is the part of the terminal interface the app drives.
type UI interface {
	// LoginFlow blocks until the user is authenticated or quits. notice is
	// shown above the form when not empty.
	LoginFlow(ctx context.Context, notice string) (models.UserProfile, error)

	// Dashboard blocks until the user quits or logs out.
	Dashboard(ctx context.Context, user models.UserProfile, refreshInterval time.Duration) (logout bool, err error)
}
