package engine

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"
)

// Reference positions with published perft counts.
var perftPositions = []struct {
	name   string
	fen    string
	counts []uint64 // counts[d-1] is the node count at depth d
}{
	{"initial", InitialFEN, []uint64{20, 400, 8902}},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", []uint64{48, 2039}},
	{"position 3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", []uint64{14, 191, 2812}},
	{"position 4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", []uint64{6, 264}},
	{"position 5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", []uint64{44, 1486}},
}

func TestPerft(t *testing.T) {
	for _, pos := range perftPositions {
		for i, want := range pos.counts {
			depth := i + 1
			if testing.Short() && depth > 2 {
				continue
			}
			t.Run(fmt.Sprintf("%s/depth%d", pos.name, depth), func(t *testing.T) {
				st := mustState(t, pos.fen)
				if got := Perft(st, depth); got != want {
					t.Errorf("Perft(%d) = %d, want %d", depth, got, want)
				}
			})
		}
	}
}

func TestPerft_DoesNotModifyState(t *testing.T) {
	st := mustState(t, perftPositions[1].fen)
	before := StateToFEN(st)
	Perft(st, 2)
	if after := StateToFEN(st); after != before {
		t.Errorf("state changed: %q -> %q", before, after)
	}
}

// dragonPerft counts leaf nodes with an independent move generator.
func dragonPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragonPerft(b, depth-1)
		unapply()
	}
	return nodes
}

// dragonDivide returns the per-root-move counts of dragonPerft.
func dragonDivide(b *dragontoothmg.Board, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	for _, m := range b.GenerateLegalMoves() {
		m := m
		unapply := b.Apply(m)
		counts[strings.ToLower(m.String())] = dragonPerft(b, depth-1)
		unapply()
	}
	return counts
}

func TestDivide_MatchesDragontooth(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1",
		"7k/P7/8/8/8/8/8/K7 w - - 0 1",
	}
	for _, pos := range perftPositions {
		fens = append(fens, pos.fen)
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			st := mustState(t, fen)
			board := dragontoothmg.ParseFen(fen)

			got := Divide(st, 2)
			want := dragonDivide(&board, 2)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Divide(2) mismatch (-dragontooth +engine):\n%s", diff)
			}
		})
	}
}
