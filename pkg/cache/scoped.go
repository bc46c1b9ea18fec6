package cache

// ScopedKeyer wraps a Keyer with a prefix so separate contexts (e.g.
// preview sessions on the shared server) get isolated namespaces.
//
//	sessionKeyer := NewScopedKeyer(NewDefaultKeyer(), "session:abc123:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every key.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// HTTPKey generates a prefixed key for a cached catalog download.
func (k *ScopedKeyer) HTTPKey(namespace, url string) string {
	return k.prefix + k.inner.HTTPKey(namespace, url)
}

// ImageKey generates a prefixed key for part-image geometry.
func (k *ScopedKeyer) ImageKey(nameKey string) string {
	return k.prefix + k.inner.ImageKey(nameKey)
}

// LayoutKey generates a prefixed key for a packed layout.
func (k *ScopedKeyer) LayoutKey(modelHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(modelHash, opts)
}
