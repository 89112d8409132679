// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserIDInContext means a protected handler ran without the auth
	// middleware in front of it.
	ErrNoUserIDInContext = errors.New("no user id in request context")

	// ErrInvalidRequestBody is returned when a JSON body cannot be decoded.
	ErrInvalidRequestBody = errors.New("invalid request body")
)
