package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestMustParseGame(t *testing.T) {
	record := MustParseGame(t, `[Event "Castle Test"]

1. e4 e5 2. Nf3 Nc6 3. Bc4 Bc5 4. O-O *`)

	AssertEqual(t, record.GetTag("Event"), "Castle Test")
	AssertEqual(t, record.PlyCount(), 7)
	AssertEqual(t, record.Result, "*")
}

func TestMustLoadFENAndPlay(t *testing.T) {
	g := MustLoadFEN(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	MustPlay(t, g, "e4", "Kd7", "e5")

	piece, ok := g.PieceAt(Sq("e5"))
	AssertTrue(t, ok, "piece on e5")
	AssertEqual(t, piece, chess.W(chess.Pawn))
	AssertEqual(t, len(g.MoveHistory()), 3)
}
