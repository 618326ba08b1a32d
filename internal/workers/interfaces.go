// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Pinger is a dependency whose reachability can be probed.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StatusReporter receives the probe verdict of a named dependency.
type StatusReporter interface {
	SetServingStatus(service string, serving bool)
}
