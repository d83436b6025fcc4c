// Package cache provides the artifact cache used by the render pipeline.
//
// Rendering a graph to SVG is by far the most expensive step wayfind
// performs, so rendered artifacts are cached keyed by a hash of the graph's
// canonical serialization plus the render options. The [Cache] interface
// keeps storage pluggable: [FileCache] persists under the user's cache
// directory, [NullCache] disables caching entirely (--no-cache).
package cache

import (
	"context"
	"fmt"
	"time"
)

// Default lifetimes for cached entries. Graphs are rebuilt whenever the
// source file changes, so their entries only need to survive a working
// session; rendered artifacts are content-addressed and can live longer.
const (
	TTLGraph    = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache stores opaque byte blobs under string keys with optional expiry.
type Cache interface {
	// Get retrieves a value. The second result reports whether the key was
	// present and unexpired; an error is reserved for storage failures.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Keyer derives cache keys for the things wayfind caches.
type Keyer interface {
	// GraphKey identifies a graph by the hash of its canonical JSON form.
	GraphKey(graphHash string) string

	// ArtifactKey identifies a rendered artifact: the graph it came from,
	// the output format, and the render options that shaped it.
	ArtifactKey(graphHash, format string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render options that change artifact bytes and
// therefore participate in the key.
type ArtifactKeyOpts struct {
	Weights bool     // edge-weight labels drawn
	Path    []string // highlighted route, in order
}

// DefaultKeyer hashes key components with SHA-256 under a fixed prefix per
// key family.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// GraphKey generates a key for a graph hash.
func (k *DefaultKeyer) GraphKey(graphHash string) string {
	return hashKey("graph", graphHash)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(graphHash, format string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", graphHash, format, opts)
}

// ScopedKeyer wraps a Keyer with a prefix so separate workspaces can share
// one cache directory without colliding.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer whose keys all carry prefix.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// GraphKey generates a prefixed graph key.
func (k *ScopedKeyer) GraphKey(graphHash string) string {
	return k.prefix + k.inner.GraphKey(graphHash)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(graphHash, format string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(graphHash, format, opts)
}

// String implements fmt.Stringer for debugging output.
func (k *ScopedKeyer) String() string {
	return fmt.Sprintf("ScopedKeyer(%q)", k.prefix)
}
