package engine

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// mustState decodes fen or fails the test.
func mustState(t testing.TB, fen string) *chess.GameState {
	t.Helper()
	st, err := NewStateFromFEN(fen)
	if err != nil {
		t.Fatalf("NewStateFromFEN(%q) error: %v", fen, err)
	}
	return st
}

// squareNames renders squares as sorted algebraic names for comparison.
func squareNames(squares []chess.Square) []string {
	names := make([]string, 0, len(squares))
	for _, sq := range squares {
		names = append(names, sq.String())
	}
	sort.Strings(names)
	return names
}

// play applies a sequence of coordinate moves, checking each is legal.
func play(t *testing.T, st *chess.GameState, moves ...string) {
	t.Helper()
	for _, text := range moves {
		from, to := chess.Sq(text[0:2]), chess.Sq(text[2:4])
		promo := chess.NoPieceType
		if len(text) == 5 {
			promo = chess.PieceTypeFromLetter(text[4])
		}
		if !containsSquare(LegalMoves(st, from), to) {
			t.Fatalf("move %s is not legal in %s", text, StateToFEN(st))
		}
		st.History = append(st.History, ApplyMove(st, from, to, promo))
	}
}
