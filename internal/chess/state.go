package chess

// Status classifies a position for the side to move.
type Status int

const (
	Ongoing Status = iota
	InCheck
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case InCheck:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Ongoing"
	}
}

// IsTerminal reports whether no further moves can be made.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}

// GameState is the complete state of one game: the position, whose turn
// it is, the move history and the derived check flags.
type GameState struct {
	Board Board

	// Who has the next move.
	ToMove Colour

	// Applied moves in order. Append-only.
	History []Move

	// Derived after every applied move for the side to move.
	IsCheck     bool
	IsCheckmate bool
	IsStalemate bool

	Castling CastlingRights

	// Is an en passant capture possible? If so EPSquare is the square the
	// capturing pawn moves to. Only set straight after a double pawn step.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current full-move number, starting at 1 and incremented after
	// Black moves.
	MoveNumber uint
}

// NewGameState creates a state holding the standard starting position.
func NewGameState() *GameState {
	return &GameState{
		Board:      NewInitialBoard(),
		ToMove:     White,
		Castling:   AllCastlingRights,
		EPSquare:   NoSquare,
		MoveNumber: 1,
	}
}

// Clone returns a deep copy that shares nothing with s.
func (s *GameState) Clone() *GameState {
	c := *s
	if s.History != nil {
		c.History = make([]Move, len(s.History))
		copy(c.History, s.History)
	}
	return &c
}

// Status returns the classification of the current position.
func (s *GameState) Status() Status {
	switch {
	case s.IsCheckmate:
		return Checkmate
	case s.IsStalemate:
		return Stalemate
	case s.IsCheck:
		return InCheck
	default:
		return Ongoing
	}
}

// PlyCount returns the number of half-moves in the history.
func (s *GameState) PlyCount() int {
	return len(s.History)
}

// LastMove returns the most recent move, or nil if no moves were made.
func (s *GameState) LastMove() *Move {
	if len(s.History) == 0 {
		return nil
	}
	return &s.History[len(s.History)-1]
}

// ClearEnPassant removes any en passant target.
func (s *GameState) ClearEnPassant() {
	s.EnPassant = false
	s.EPSquare = NoSquare
}

// SetEnPassant records sq as the en passant target.
func (s *GameState) SetEnPassant(sq Square) {
	s.EnPassant = true
	s.EPSquare = sq
}
