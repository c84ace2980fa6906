package server

// Server is the lifecycle contract of the transport layer.
// [NewServer] builds one from the enabled transports; RunServer blocks until
// a stop signal arrives, and Shutdown drains in-flight requests.
type Server interface {
	RunServer()
	Shutdown()
}
