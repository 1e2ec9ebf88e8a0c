// Package cache stores rendered dashboard artifacts.
//
// Rendering a dashboard is cheap for the layout itself but not for every
// chart kind (graph panels run Graphviz). The pipeline therefore keys each
// rendered document by the canonical dashboard definition plus the chosen
// layout and theme, and stores the HTML in a [Cache].
//
// Backends:
//
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: shared cache for the preview server
//   - [NullCache]: caching disabled
//
// Keys are built by a [Keyer]; [ScopedKeyer] adds a namespace prefix so
// several dashboards or users can share one backend.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// TTLDashboard is how long rendered dashboards stay cached.
const TTLDashboard = 7 * 24 * time.Hour

// DashboardKeyOpts are the render choices that change a dashboard's output.
type DashboardKeyOpts struct {
	Layout int    `json:"layout"`
	Theme  string `json:"theme"`
	Title  string `json:"title,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// DashboardKey returns the key for a dashboard rendered with opts.
	// configHash identifies the dashboard definition (see [Hash]).
	DashboardKey(configHash string, opts DashboardKeyOpts) string
}

// DefaultKeyer builds unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// DashboardKey implements Keyer.
func (DefaultKeyer) DashboardKey(configHash string, opts DashboardKeyOpts) string {
	return hashKey("dashboard", configHash, opts)
}

// Clearer is implemented by backends that can drop every entry they hold.
type Clearer interface {
	// Clear removes all entries and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}
