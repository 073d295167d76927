package server

// Server is the lifecycle contract of the vault daemon's transports: the
// HTTP bridge the local clients talk to and the gRPC health endpoint
// supervisors poll.
//
// Implementations block in [RunServer] until a shutdown signal arrives and
// finish in-flight requests in [Shutdown] — the vault process must never
// die mid-write.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
