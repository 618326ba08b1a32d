// Package server wires and runs the application's transport servers.
//
// It runs the HTTP API and the gRPC health server side by side and shuts
// both down gracefully on a termination signal.
package server
