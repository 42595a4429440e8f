package config

// DuplicateConfig holds settings for duplicate game detection in batch mode.
type DuplicateConfig struct {
	// Suppress drops games whose final position was already seen
	Suppress bool

	// ExactMatch also requires the ply counts to agree
	ExactMatch bool

	// MaxCapacity bounds the number of remembered positions (0 = unlimited)
	MaxCapacity int
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}
