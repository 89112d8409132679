// Package server runs the jobwise REST API and, when an address is
// configured, the gRPC health endpoint. Both stop on SIGINT or SIGTERM.
package server
