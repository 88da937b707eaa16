package server

// Server is the lifecycle contract the entrypoint drives.
//
// RunServer blocks until the process is told to stop and only then
// returns; Shutdown drains in-flight relayed requests and releases the
// listener.
type Server interface {
	RunServer()
	Shutdown()
}
