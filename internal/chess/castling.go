package chess

// CastlingRights records, per side and direction, whether castling is still
// available. Rights only ever go from true to false during a game.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights is the set held in the starting position.
var AllCastlingRights = CastlingRights{true, true, true, true}

// Kingside reports the kingside right of the given colour.
func (c CastlingRights) Kingside(colour Colour) bool {
	if colour == White {
		return c.WhiteKingside
	}
	return c.BlackKingside
}

// Queenside reports the queenside right of the given colour.
func (c CastlingRights) Queenside(colour Colour) bool {
	if colour == White {
		return c.WhiteQueenside
	}
	return c.BlackQueenside
}

// RevokeKingside clears the kingside right of the given colour.
func (c *CastlingRights) RevokeKingside(colour Colour) {
	if colour == White {
		c.WhiteKingside = false
	} else {
		c.BlackKingside = false
	}
}

// RevokeQueenside clears the queenside right of the given colour.
func (c *CastlingRights) RevokeQueenside(colour Colour) {
	if colour == White {
		c.WhiteQueenside = false
	} else {
		c.BlackQueenside = false
	}
}

// Revoke clears both rights of the given colour.
func (c *CastlingRights) Revoke(colour Colour) {
	c.RevokeKingside(colour)
	c.RevokeQueenside(colour)
}

// Any reports whether any right remains.
func (c CastlingRights) Any() bool {
	return c.WhiteKingside || c.WhiteQueenside || c.BlackKingside || c.BlackQueenside
}

// Castling geometry for standard chess.
const (
	KingStartCol     = 4
	KingsideRookCol  = BoardSize - 1
	QueensideRookCol = 0
	KingsideKingCol  = 6
	KingsideRookTo   = 5
	QueensideKingCol = 2
	QueensideRookTo  = 3
)

// KingStart returns the king's home square for the given colour.
func KingStart(colour Colour) Square {
	return Square{Row: HomeRow(colour), Col: KingStartCol}
}

// RookStart returns the home square of the kingside or queenside rook.
func RookStart(colour Colour, kingside bool) Square {
	if kingside {
		return Square{Row: HomeRow(colour), Col: KingsideRookCol}
	}
	return Square{Row: HomeRow(colour), Col: QueensideRookCol}
}
