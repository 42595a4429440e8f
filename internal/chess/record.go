package chess

// GameRecord is a decoded game score: its tag pairs, the SAN move tokens in
// order and the result token.
type GameRecord struct {
	// Tags for this game (e.g., Event, Site, Date, White, Black, Result).
	Tags map[string]string

	// Move text tokens, stripped of numbers, comments, NAGs and variations.
	Moves []string

	// The terminating result token ("1-0", "0-1", "1/2-1/2" or "*"), empty
	// if the move text carried none.
	Result string
}

// NewGameRecord creates a new empty record.
func NewGameRecord() *GameRecord {
	return &GameRecord{
		Tags: make(map[string]string),
	}
}

// GetTag returns a tag value, or empty string if not present.
func (g *GameRecord) GetTag(name string) string {
	return g.Tags[name]
}

// SetTag sets a tag value.
func (g *GameRecord) SetTag(name, value string) {
	g.ensureTags()
	g.Tags[name] = value
}

// HasTag returns true if the tag is present.
func (g *GameRecord) HasTag(name string) bool {
	_, ok := g.Tags[name]
	return ok
}

// ensureTags initializes the Tags map if it is nil.
func (g *GameRecord) ensureTags() {
	if g.Tags == nil {
		g.Tags = make(map[string]string)
	}
}

// FEN returns the FEN tag if present.
func (g *GameRecord) FEN() string {
	return g.GetTag(FENTag)
}

// PlyCount returns the number of half-moves in the record.
func (g *GameRecord) PlyCount() int {
	return len(g.Moves)
}

// AppendMove adds a move token to the end of the record.
func (g *GameRecord) AppendMove(san string) {
	g.Moves = append(g.Moves, san)
}
