// Package delivery defines the contract every transport front-end of the
// service fulfils.
package delivery

import "context"

// Delivery is a serving surface, such as the HTTP server.
type Delivery interface {
	// Serve blocks until the surface stops or fails.
	Serve(ctx context.Context) error
}
