package server

// Server is a transport that can be started and stopped.
type Server interface {
	// RunServer blocks while the server accepts connections.
	RunServer()

	// Shutdown stops accepting work and waits for in-flight requests.
	Shutdown()
}
