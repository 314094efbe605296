// Package adapter defines interfaces for external dependencies of use cases.
package adapter

import "context"

// DashboardCache defines a short-lived cache for the serialized dashboard
// payload. Implementations must treat cache failures as misses; the dashboard
// is always recomputable from the database.
type DashboardCache interface {
	// Get retrieves the cached payload. Returns ok=false on miss.
	Get(ctx context.Context) (payload []byte, ok bool)

	// Set stores the payload with the cache's configured TTL.
	Set(ctx context.Context, payload []byte)
}
