// Package delivery holds the transports exposing the engine.
package delivery

import "context"

// Delivery is a server started by the application once the graph is built.
type Delivery interface {
	Serve(ctx context.Context) error
}
