// Package config provides configuration loading, merging, and validation
// facilities for the jobwise server and client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (optional)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Fields left unset by every source receive defaults.
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the terminal client.
package config
