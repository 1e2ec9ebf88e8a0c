package cache

// ScopedKeyer wraps a Keyer with a prefix so several tenants can share one
// backend without colliding.
//
//	serverKeyer := NewScopedKeyer(NewDefaultKeyer(), "serve:fleet:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// DashboardKey generates a prefixed dashboard key.
func (k *ScopedKeyer) DashboardKey(configHash string, opts DashboardKeyOpts) string {
	return k.prefix + k.inner.DashboardKey(configHash, opts)
}
