package cache

// ScopedKeyer wraps a Keyer with a prefix, so that several tenants or
// environments can share one cache backend.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer uses the
// default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) ArtifactKey(chartHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(chartHash, opts)
}

func (k *ScopedKeyer) LayoutKey(chartHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(chartHash, opts)
}
