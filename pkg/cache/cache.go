// Package cache provides the byte cache behind the layout pipeline and
// the HTTP server: packed layouts, part-image geometry, and catalog
// downloads all key into it. Backends cover single-user CLI runs
// (FileCache), disabled caching (NullCache), and shared server
// deployments (RedisCache).
package cache

import (
	"context"
	"time"
)

// TTLs per entry class. Layouts are cheap to recompute, catalog
// downloads and part geometry much less so.
const (
	TTLLayout = 7 * 24 * time.Hour
	TTLImage  = 30 * 24 * time.Hour
	TTLHTTP   = 24 * time.Hour
)

// Cache stores opaque byte values under string keys with per-entry
// expiry. A zero ttl means the entry never expires.
type Cache interface {
	// Get returns the cached bytes and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key for ttl.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes the key; absent keys are not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer builds the cache keys the pipeline uses, so every caller
// agrees on what identifies an entry.
type Keyer interface {
	// HTTPKey identifies a cached catalog download.
	HTTPKey(namespace, url string) string

	// ImageKey identifies the geometry derived from one rendered part
	// image. The name key already encodes every render attribute.
	ImageKey(nameKey string) string

	// LayoutKey identifies a packed parts-list layout.
	LayoutKey(modelHash string, opts LayoutKeyOpts) string
}

// LayoutKeyOpts are the attributes that change a packed layout without
// changing the model file.
type LayoutKeyOpts struct {
	List       string  // "pli" or "bom"
	Constrain  string  // constraint kind
	Magnitude  float32 // constraint magnitude
	Resolution float32
	Renderer   string
	SortOrder  string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// HTTPKey generates a key for a cached catalog download.
func (k *DefaultKeyer) HTTPKey(namespace, url string) string {
	return "http:" + namespace + ":" + url
}

// ImageKey generates a key for cached part-image geometry.
func (k *DefaultKeyer) ImageKey(nameKey string) string {
	return "image:" + nameKey
}

// LayoutKey generates a key for a packed layout. The options are
// hashed so adding a field never breaks existing key parsing.
func (k *DefaultKeyer) LayoutKey(modelHash string, opts LayoutKeyOpts) string {
	return hashKey("layout:"+modelHash, opts)
}

var _ Keyer = (*DefaultKeyer)(nil)
