// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// jobwise server handlers, middleware and the terminal client.
//
// All Msg* constants are human-readable message strings that are written into
// the {"message": ...} body of HTTP responses. The client matches on them to
// recover the business error behind a status code, so the wording is part of
// the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUserAlreadyExists is returned by signup when the email is taken.
	MsgUserAlreadyExists = "user with this email already exists"

	// MsgInvalidCredentials is returned by login for an unknown email or a
	// wrong password alike.
	MsgInvalidCredentials = "invalid email or password"

	// MsgUserNotFound is returned when no account matches the email or the
	// token subject.
	MsgUserNotFound = "user not found"

	// MsgIncorrectAnswer is returned by password recovery when the security
	// answer does not match.
	MsgIncorrectAnswer = "incorrect security answer"

	// MsgPasswordReset is the success message of password recovery.
	MsgPasswordReset = "password reset successfully"

	// MsgUnauthenticated is returned when the bearer token is missing,
	// malformed, expired or signed by someone else.
	MsgUnauthenticated = "authentication required"

	// MsgInvalidPeriod is returned for an unsupported analytics period.
	MsgInvalidPeriod = "invalid period"

	// MsgInvalidStatus is returned for an unsupported job status filter.
	MsgInvalidStatus = "invalid status"

	// MsgJobNotFound is returned when a job application does not exist for the
	// current user.
	MsgJobNotFound = "job application not found"

	// MsgNotFound is returned for unknown routes and unsupported methods.
	MsgNotFound = "not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
