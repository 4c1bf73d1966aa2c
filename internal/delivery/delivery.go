// Package delivery defines the contract shared by all serving surfaces.
package delivery

import "context"

// Delivery is implemented by every long-running serving component (HTTP
// server, poll scheduler). Serve blocks until the component stops or fails;
// shutdown is driven through fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
