package cache

// Keyer builds cache keys. Implementations must be deterministic: equal
// inputs always yield equal keys.
type Keyer interface {
	// LayoutKey is the key of the layout computed for a chart.
	LayoutKey(chartHash string) string

	// ArtifactKey is the key of a chart rendered to format.
	ArtifactKey(chartHash, format string) string
}

// DefaultKeyer builds unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) LayoutKey(chartHash string) string {
	return hashKey("layout", chartHash)
}

func (DefaultKeyer) ArtifactKey(chartHash, format string) string {
	return hashKey("artifact", chartHash, format)
}
