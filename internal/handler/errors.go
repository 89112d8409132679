// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated means the server config has neither an HTTP nor a
// gRPC address.
var errNoHandlersAreCreated = errors.New("no transport address configured")
