// Package delivery defines the contract every transport adapter fulfills.
package delivery

import "context"

// Delivery is a long-running transport serving the application, such as an
// HTTP server. Implementations block in Serve until the context is done or
// the listener fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
