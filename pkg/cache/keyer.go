package cache

// Keyer builds cache keys. Implementations must produce different keys for
// different inputs and identical keys for identical inputs.
type Keyer interface {
	// PlanKey returns the key for the segment plan of a settings hash.
	PlanKey(settingsHash string) string

	// ArtifactKey returns the key for a rendered artifact.
	ArtifactKey(settingsHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts holds the render options that affect an artifact's bytes.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Scale  float32 `json:"scale,omitempty"`
	Theme  string  `json:"theme,omitempty"`
	Labels bool    `json:"labels,omitempty"`
	Width  int     `json:"width,omitempty"`
}

// DefaultKeyer is the standard Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard Keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// PlanKey returns "plan:<hash>".
func (DefaultKeyer) PlanKey(settingsHash string) string {
	return hashKey("plan", settingsHash)
}

// ArtifactKey returns "artifact:<hash>" over the settings hash and options.
func (DefaultKeyer) ArtifactKey(settingsHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", settingsHash, opts)
}
