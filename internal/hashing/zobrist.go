package hashing

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Key table layout.
const (
	pieceKinds   = 6
	squareCount  = chess.BoardSize * chess.BoardSize
	castlingKeys = 4
)

// zobristKeys holds the random values XORed together to form a position
// key. The table is generated from a fixed seed so keys are stable between
// runs and can be persisted.
var zobristKeys = newKeyTable(0x9E3779B97F4A7C15)

type keyTable struct {
	pieces    [2][pieceKinds][squareCount]uint64
	blackMove uint64
	castling  [castlingKeys]uint64
	epFile    [chess.BoardSize]uint64
}

// newKeyTable fills a table from a splitmix64 sequence.
func newKeyTable(seed uint64) *keyTable {
	state := seed
	next := func() uint64 {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	t := &keyTable{}
	for c := range t.pieces {
		for p := range t.pieces[c] {
			for sq := range t.pieces[c][p] {
				t.pieces[c][p][sq] = next()
			}
		}
	}
	t.blackMove = next()
	for i := range t.castling {
		t.castling[i] = next()
	}
	for i := range t.epFile {
		t.epFile[i] = next()
	}
	return t
}

// BoardHash returns the Zobrist key of the piece placement alone.
func BoardHash(board *chess.Board) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() {
				continue
			}
			hash ^= zobristKeys.pieces[piece.Colour][piece.Type-chess.Pawn][row*chess.BoardSize+col]
		}
	}
	return hash
}

// Zobrist returns the key of a full position: piece placement, side to
// move, castling rights and the en passant file. Move history and the
// clocks are not part of the key, so transpositions share a key.
func Zobrist(st *chess.GameState) uint64 {
	hash := BoardHash(&st.Board)

	if st.ToMove == chess.Black {
		hash ^= zobristKeys.blackMove
	}

	rights := []bool{
		st.Castling.WhiteKingside,
		st.Castling.WhiteQueenside,
		st.Castling.BlackKingside,
		st.Castling.BlackQueenside,
	}
	for i, ok := range rights {
		if ok {
			hash ^= zobristKeys.castling[i]
		}
	}

	if st.EnPassant && st.EPSquare.InBounds() {
		hash ^= zobristKeys.epFile[st.EPSquare.Col]
	}
	return hash
}

// WeakHash is a cheap secondary hash of the piece placement, used to
// confirm Zobrist matches.
func WeakHash(board *chess.Board) uint32 {
	var hash uint32
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() {
				continue
			}
			sq := uint32(row*chess.BoardSize + col + 1)
			hash += sq * uint32(piece.FENLetter())
		}
	}
	return hash
}
