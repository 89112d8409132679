package adapter

import "errors"

// Transport errors keyed by the HTTP status class of the response. The
// server's message is appended after ": " so callers can match it.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrServerError  = errors.New("server error")
	ErrUnexpected   = errors.New("unexpected response")
)
