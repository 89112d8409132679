// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client drives the jobwise terminal client: it restores the saved
// session or shows the login screen, then the dashboard, and goes back to
// login after a logout.
package client
