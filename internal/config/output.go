package config

// OutputFormat represents different move notations for output.
type OutputFormat int

const (
	SAN  OutputFormat = iota // Standard Algebraic Notation
	LALG                     // Long algebraic (Ng1-f3, e7-e8=Q)
	UCI                      // UCI format (e2e4, e7e8q)
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case LALG:
		return "lalg"
	case UCI:
		return "uci"
	default:
		return "san"
	}
}

// ParseOutputFormat converts a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch s {
	case "san", "SAN", "":
		return SAN, true
	case "lalg", "LALG":
		return LALG, true
	case "uci", "UCI":
		return UCI, true
	default:
		return SAN, false
	}
}

// TagOutputForm specifies which tags to output.
type TagOutputForm int

const (
	AllTags        TagOutputForm = 0
	SevenTagRoster TagOutputForm = 1
	NoTags         TagOutputForm = 2
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the move notation
	Format OutputFormat

	// MaxLineLength is the maximum line length for PGN output
	MaxLineLength uint

	// JSONFormat enables JSON output instead of PGN
	JSONFormat bool

	// KeepMoveNumbers controls whether move numbers are included
	KeepMoveNumbers bool

	// KeepResults controls whether game results are included
	KeepResults bool

	// TagFormat specifies which tags to output (AllTags, SevenTagRoster, NoTags)
	TagFormat TagOutputForm
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          SAN,
		MaxLineLength:   80,
		KeepMoveNumbers: true,
		KeepResults:     true,
		TagFormat:       AllTags,
	}
}
