package chess

// Square is a board coordinate. Row 0 is rank 8 (Black's back rank) and
// row 7 is rank 1; column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// NoSquare is a sentinel outside the board.
var NoSquare = Square{Row: -1, Col: -1}

// InBounds reports whether the square lies on the 8x8 board.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square dr rows and dc columns away. The result may be
// off the board.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// File returns the file character ('a'-'h').
func (s Square) File() byte {
	return byte(ColBase + s.Col)
}

// Rank returns the rank character ('1'-'8').
func (s Square) Rank() byte {
	return byte(LastRank - s.Row)
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.InBounds() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// IsFile reports whether c is a file character.
func IsFile(c byte) bool {
	return c >= ColBase && c <= LastCol
}

// IsRank reports whether c is a rank character.
func IsRank(c byte) bool {
	return c >= RankBase && c <= LastRank
}

// ColFromFile converts a file character to a board column.
func ColFromFile(c byte) int {
	return int(c - ColBase)
}

// RowFromRank converts a rank character to a board row.
func RowFromRank(c byte) int {
	return int(LastRank - c)
}

// ParseSquare converts an algebraic square name such as "e4".
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 || !IsFile(name[0]) || !IsRank(name[1]) {
		return NoSquare, false
	}
	return Square{Row: RowFromRank(name[1]), Col: ColFromFile(name[0])}, true
}

// Sq is ParseSquare for literals known to be valid. It panics otherwise.
func Sq(name string) Square {
	sq, ok := ParseSquare(name)
	if !ok {
		panic("chess: invalid square " + name)
	}
	return sq
}
