// Package delivery defines the contract every serving surface implements.
package delivery

import "context"

// Delivery is a long-running serving surface started by the application
// container.
type Delivery interface {
	Serve(ctx context.Context) error
}
