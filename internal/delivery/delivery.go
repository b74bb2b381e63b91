// Package delivery defines the transport surface shared by the servers.
package delivery

import "context"

// Delivery is a long-running transport started by main and shut down through
// the fx lifecycle.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
