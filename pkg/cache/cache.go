// Package cache provides a small byte cache used to memoize rendered
// schematic artifacts. Rendering a layout document through Graphviz is the
// only expensive step in the tool, so artifacts are cached keyed by the
// document's content hash and output format.
package cache

import (
	"context"
	"time"
)

// Cache is the interface for artifact cache backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL. A zero TTL means the
	// entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKey builds the cache key for a rendered artifact.
// The key format is: artifact:<format>:<hash of the document bytes>.
func ArtifactKey(docData []byte, format string) string {
	return "artifact:" + format + ":" + Hash(docData)
}
