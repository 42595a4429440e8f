package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// MustParseGame parses a PGN string and returns the first game.
// It calls t.Fatal if parsing fails.
func MustParseGame(t testing.TB, pgn string) *chess.GameRecord {
	t.Helper()
	record, err := notation.ParsePGN(pgn)
	if err != nil {
		t.Fatalf("failed to parse test game: %v\n%s", err, pgn)
	}
	return record
}

// MustLoadFEN returns a game starting from fen.
func MustLoadFEN(t testing.TB, fen string) *game.Game {
	t.Helper()
	g, err := game.NewFromFEN(fen)
	if err != nil {
		t.Fatalf("NewFromFEN(%q): %v", fen, err)
	}
	return g
}

// MustPlay plays SAN moves in order, failing the test on the first one
// that is rejected.
func MustPlay(t testing.TB, g *game.Game, moves ...string) {
	t.Helper()
	for _, san := range moves {
		if err := g.MakeSANMove(san); err != nil {
			t.Fatalf("MakeSANMove(%q) in %s: %v", san, g.FEN(), err)
		}
	}
}

// Sq is shorthand for chess.Sq in test tables.
func Sq(name string) chess.Square {
	return chess.Sq(name)
}
