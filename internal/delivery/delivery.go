// Package delivery defines the contract every serving surface implements.
package delivery

import "context"

// Delivery is a long-running serving surface started by the application
// container. Serve blocks until the surface stops; shutdown is handled
// through lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
