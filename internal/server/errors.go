package server

import "errors"

var (
	// errNoServersAreCreated means neither an HTTP nor a gRPC address was configured.
	errNoServersAreCreated = errors.New("no server address configured")
	errListenGRPC          = errors.New("listen on gRPC address")
)
