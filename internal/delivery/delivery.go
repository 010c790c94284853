// Package delivery defines the contract every transport (HTTP, workers)
// implements so the entrypoint can start them uniformly.
package delivery

import "context"

// Delivery is a long-running server started by the entrypoint.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
