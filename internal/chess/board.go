package chess

// Board is the fixed 8x8 grid. It is a plain value: assigning a Board
// copies every square.
type Board struct {
	// Squares is indexed [row][col]; see Square for the orientation.
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() Board {
	return Board{}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[HomeRow(White)][col] = W(backRank[col])
		b.Squares[PawnStartRow(White)][col] = W(Pawn)
		b.Squares[PawnStartRow(Black)][col] = B(Pawn)
		b.Squares[HomeRow(Black)][col] = B(backRank[col])
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
}

// Get returns the piece at sq, or Empty when sq is off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.InBounds() {
		return Empty
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece at sq. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.InBounds() {
		b.Squares[sq.Row][sq.Col] = piece
	}
}

// IsEmpty reports whether sq is on the board and unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.InBounds() && b.Squares[sq.Row][sq.Col].IsEmpty()
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	newBoard := *b
	return &newBoard
}

// FindKing returns the square of the given colour's king. With several
// kings on the board the first in row-major order wins.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	king := MakePiece(colour, King)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == king {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return NoSquare, false
}

// PiecesOf returns the squares holding pieces of the given colour and type,
// in row-major order. NoPieceType matches every piece of that colour.
func (b *Board) PiecesOf(colour Colour, pieceType PieceType) []Square {
	var squares []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if p.IsEmpty() || p.Colour != colour {
				continue
			}
			if pieceType != NoPieceType && p.Type != pieceType {
				continue
			}
			squares = append(squares, Square{Row: row, Col: col})
		}
	}
	return squares
}

// String renders the board as eight text lines, rank 8 first, using FEN
// letters and '.' for empty squares.
func (b *Board) String() string {
	buf := make([]byte, 0, BoardSize*(BoardSize+1))
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if p.IsEmpty() {
				buf = append(buf, '.')
			} else {
				buf = append(buf, p.FENLetter())
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
