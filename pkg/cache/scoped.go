package cache

// ScopedKeyer wraps a Keyer with a prefix so several tenants or tool
// versions can share one backend without seeing each other's entries.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer falls
// back to [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) LayoutKey(chartHash string) string {
	return k.prefix + k.inner.LayoutKey(chartHash)
}

func (k *ScopedKeyer) ArtifactKey(chartHash, format string) string {
	return k.prefix + k.inner.ArtifactKey(chartHash, format)
}
