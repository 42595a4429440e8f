package chess

// Move is one applied move. A Move is created once, when the move is
// applied, appended to the history and never modified afterwards.
type Move struct {
	From Square
	To   Square

	// The piece being moved, as it stood on From.
	Piece Piece

	// The piece captured (Empty if no capture). For en passant this is the
	// passed pawn, which did not stand on To.
	Captured Piece

	EnPassant bool
	Castling  bool

	// The piece type promoted to (NoPieceType if not a promotion).
	Promotion PieceType

	// The move in Standard Algebraic Notation, e.g. "Nf3", "O-O", "exd6".
	Notation string
}

// IsCapture returns true if this move is a capture.
func (m *Move) IsCapture() bool {
	return !m.Captured.IsEmpty() || m.EnPassant
}

// IsPromotion returns true if this move is a pawn promotion.
func (m *Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// IsKingsideCastle returns true for O-O.
func (m *Move) IsKingsideCastle() bool {
	return m.Castling && m.To.Col > m.From.Col
}

// IsQueensideCastle returns true for O-O-O.
func (m *Move) IsQueensideCastle() bool {
	return m.Castling && m.To.Col < m.From.Col
}

// String returns the move's notation, falling back to coordinates.
func (m Move) String() string {
	if m.Notation != "" {
		return m.Notation
	}
	return m.From.String() + m.To.String()
}
