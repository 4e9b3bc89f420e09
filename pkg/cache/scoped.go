package cache

// ScopedKeyer wraps a Keyer with a prefix, giving callers separate cache
// namespaces in a shared backend.
//
// Example usage:
//
//	// Keys for the HTTP server, kept apart from CLI entries in the same Redis
//	serverKeyer := NewScopedKeyer(NewDefaultKeyer(), "server:")
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

// PlanKey generates a prefixed key for plan caching.
func (k *ScopedKeyer) PlanKey(settingsHash string) string {
	return k.prefix + k.inner.PlanKey(settingsHash)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(settingsHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(settingsHash, opts)
}
