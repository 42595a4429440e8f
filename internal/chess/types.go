// Package chess provides the core chess value types: colours, pieces,
// squares, the board, moves and the game state they make up.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// FENLetter returns the active-colour letter used in FEN ('w' or 'b').
func (c Colour) FENLetter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// PieceType represents a kind of chess piece, independent of colour.
type PieceType int

const (
	NoPieceType PieceType = iota // Empty square / no promotion
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceTypeFromLetter converts a piece letter of either case to a piece type.
// It returns NoPieceType for anything else.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPieceType
	}
}

// IsPromotionTarget reports whether a pawn may promote to this piece type.
func (p PieceType) IsPromotionTarget() bool {
	switch p {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// Piece is an immutable coloured piece. The zero value is Empty.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// Empty is the contents of an unoccupied square.
var Empty = Piece{}

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, pieceType PieceType) Piece {
	return Piece{Type: pieceType, Colour: colour}
}

// W creates a white piece.
func W(pieceType PieceType) Piece {
	return MakePiece(White, pieceType)
}

// B creates a black piece.
func B(pieceType PieceType) Piece {
	return MakePiece(Black, pieceType)
}

// IsEmpty reports whether the piece is the empty square marker.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// FENLetter returns the FEN letter of the piece: uppercase for white,
// lowercase for black.
func (p Piece) FENLetter() byte {
	letter := p.Type.Letter()
	if p.Colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// PieceFromFENLetter converts a FEN piece letter to a coloured piece.
// The second result is false when c is not a piece letter.
func PieceFromFENLetter(c byte) (Piece, bool) {
	pieceType := PieceTypeFromLetter(c)
	if pieceType == NoPieceType {
		return Empty, false
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
	}
	return MakePiece(colour, pieceType), true
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'
	LastRank = RankBase + BoardSize - 1
	LastCol  = ColBase + BoardSize - 1
)

// HomeRow returns the board row of the given colour's back rank.
func HomeRow(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// PawnStartRow returns the board row the given colour's pawns start on.
func PawnStartRow(colour Colour) int {
	if colour == White {
		return BoardSize - 2
	}
	return 1
}

// PromotionRow returns the farthest row for the given colour's pawns.
func PromotionRow(colour Colour) int {
	return HomeRow(colour.Opposite())
}

// ForwardOffset returns the row delta of a pawn step: -1 for White
// (towards row 0), +1 for Black.
func ForwardOffset(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}
