// Package server wires and runs the daemon's transport servers.
//
// It provides orchestration for the local HTTP bridge and the gRPC health
// endpoint, including startup, signal handling, and graceful shutdown of
// all enabled transports.
package server
