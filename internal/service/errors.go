package service

import "errors"

// Client errors: the request is understood but cannot be served as given.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrDuplicateUser       = errors.New("user with this email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUserNotFound        = errors.New("user not found")
	ErrIncorrectAnswer     = errors.New("incorrect security answer")
	ErrInvalidPeriod       = errors.New("invalid period")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrJobNotFound         = errors.New("job application not found")
)

// Authentication errors.
var (
	ErrUnauthenticated = errors.New("authentication required")

	// ErrNoSession is returned by the client when nothing is saved locally.
	ErrNoSession = errors.New("no saved session")
)

// Server errors.
var (
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("version is not specified")
	ErrServerUnavailable     = errors.New("server unavailable")
)
