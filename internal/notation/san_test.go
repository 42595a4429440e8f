package notation

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

func mustState(t testing.TB, fen string) *chess.GameState {
	t.Helper()
	st, err := engine.NewStateFromFEN(fen)
	if err != nil {
		t.Fatalf("NewStateFromFEN(%q): %v", fen, err)
	}
	return st
}

func TestDecodeSAN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		san  string
		want MoveSpec
	}{
		{"pawn push", engine.InitialFEN, "e4", MoveSpec{From: chess.Sq("e2"), To: chess.Sq("e4")}},
		{"knight", engine.InitialFEN, "Nf3", MoveSpec{From: chess.Sq("g1"), To: chess.Sq("f3")}},
		{"check mark and annotation", engine.InitialFEN, "Nc3+!?", MoveSpec{From: chess.Sq("b1"), To: chess.Sq("c3")}},
		{"long algebraic", engine.InitialFEN, "Ng1-f3", MoveSpec{From: chess.Sq("g1"), To: chess.Sq("f3")}},
		{"pawn capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "exd5", MoveSpec{From: chess.Sq("e4"), To: chess.Sq("d5")}},
		{"en passant suffix", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "exd6e.p.", MoveSpec{From: chess.Sq("e5"), To: chess.Sq("d6")}},
		{"file disambiguation", "4k3/8/8/8/8/8/4K3/R6R w - - 0 1", "Rad1", MoveSpec{From: chess.Sq("a1"), To: chess.Sq("d1")}},
		{"rank disambiguation", "4k3/R7/8/8/8/8/8/R3K3 w - - 0 1", "R1a4", MoveSpec{From: chess.Sq("a1"), To: chess.Sq("a4")}},
		{"square disambiguation", "4k3/8/8/8/8/1Q3Q2/8/1Q2K3 w - - 0 1", "Qb3d1", MoveSpec{From: chess.Sq("b3"), To: chess.Sq("d1")}},
		{"pinned rival needs no disambiguation", "4k3/8/8/b7/8/2N3N1/8/4K3 w - - 0 1", "Ne4", MoveSpec{From: chess.Sq("g3"), To: chess.Sq("e4")}},
		{"promotion with equals", "8/P6k/8/8/8/8/8/4K3 w - - 0 1", "a8=N", MoveSpec{From: chess.Sq("a7"), To: chess.Sq("a8"), Promotion: chess.Knight}},
		{"promotion without equals", "8/P6k/8/8/8/8/8/4K3 w - - 0 1", "a8R", MoveSpec{From: chess.Sq("a7"), To: chess.Sq("a8"), Promotion: chess.Rook}},
		{"capture promotion", "1r5k/P7/8/8/8/8/8/4K3 w - - 0 1", "axb8=Q+", MoveSpec{From: chess.Sq("a7"), To: chess.Sq("b8"), Promotion: chess.Queen}},
		{"black promotion", "4k3/8/8/8/8/8/p7/4K3 b - - 0 1", "a1=Q+", MoveSpec{From: chess.Sq("a2"), To: chess.Sq("a1"), Promotion: chess.Queen}},
		{"bishop not b file", "4k3/8/8/8/8/8/1P6/2B1K3 w - - 0 1", "Bb2", MoveSpec{}},
		{"kingside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "O-O", MoveSpec{From: chess.Sq("e1"), To: chess.Sq("g1")}},
		{"queenside castle zeros", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "0-0-0", MoveSpec{From: chess.Sq("e8"), To: chess.Sq("c8")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := mustState(t, tt.fen)
			got, err := DecodeSAN(st, tt.san)
			if tt.want == (MoveSpec{}) {
				if !errors.Is(err, errors.ErrIllegalMove) {
					t.Errorf("DecodeSAN(%q) = %+v, %v; want ErrIllegalMove", tt.san, got, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeSAN(%q) error: %v", tt.san, err)
			}
			if got != tt.want {
				t.Errorf("DecodeSAN(%q) = %+v; want %+v", tt.san, got, tt.want)
			}
		})
	}
}

func TestDecodeSAN_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		san     string
		wantErr error
	}{
		{"empty", engine.InitialFEN, "", errors.ErrInvalidSAN},
		{"gibberish", engine.InitialFEN, "hello", errors.ErrInvalidSAN},
		{"off board", engine.InitialFEN, "Ni9", errors.ErrInvalidSAN},
		{"promotion to king", "8/P6k/8/8/8/8/8/4K3 w - - 0 1", "a8=K", errors.ErrInvalidSAN},
		{"promotion off last rank", engine.InitialFEN, "e4=Q", errors.ErrInvalidSAN},
		{"promotion on a piece", "8/R6k/8/8/8/8/8/4K3 w - - 0 1", "Ra8=Q", errors.ErrInvalidSAN},
		{"no piece can reach", engine.InitialFEN, "e5", errors.ErrIllegalMove},
		{"no knight can reach", engine.InitialFEN, "Nf6", errors.ErrIllegalMove},
		{"pinned piece", "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1", "Nc3", errors.ErrIllegalMove},
		{"castle without rights", "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1", "O-O", errors.ErrIllegalMove},
		{"castle through check", "4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1", "O-O", errors.ErrIllegalMove},
		{"ambiguous rooks", "4k3/8/8/8/8/8/4K3/R6R w - - 0 1", "Rd1", errors.ErrAmbiguousMove},
		{"ambiguous knights", "4k3/8/8/8/8/2N3N1/8/4K3 w - - 0 1", "Ne2", errors.ErrAmbiguousMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := mustState(t, tt.fen)
			before := engine.StateToFEN(st)
			_, err := DecodeSAN(st, tt.san)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeSAN(%q) error = %v; want %v", tt.san, err, tt.wantErr)
			}
			if after := engine.StateToFEN(st); after != before {
				t.Errorf("DecodeSAN changed the state: %s -> %s", before, after)
			}
		})
	}
}

func TestEncodeSAN(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		from, to  string
		promotion chess.PieceType
		want      string
	}{
		{"pawn push", engine.InitialFEN, "e2", "e4", chess.NoPieceType, "e4"},
		{"knight", engine.InitialFEN, "g1", "f3", chess.NoPieceType, "Nf3"},
		{"pawn capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4", "d5", chess.NoPieceType, "exd5"},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "e5", "d6", chess.NoPieceType, "exd6"},
		{"piece capture", "4k3/8/8/3p4/8/8/8/3RK3 w - - 0 1", "d1", "d5", chess.NoPieceType, "Rxd5"},
		{"file disambiguation", "4k3/8/8/8/8/8/4K3/R6R w - - 0 1", "h1", "f1", chess.NoPieceType, "Rhf1"},
		{"rank disambiguation", "4k3/R7/8/8/8/8/8/R3K3 w - - 0 1", "a7", "a4", chess.NoPieceType, "R7a4"},
		{"square disambiguation", "4k3/8/8/8/8/1Q3Q2/8/1Q2K3 w - - 0 1", "b3", "d1", chess.NoPieceType, "Qb3d1"},
		{"pinned rival", "4k3/8/8/b7/8/2N3N1/8/4K3 w - - 0 1", "g3", "e4", chess.NoPieceType, "Ne4"},
		{"check", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1", "a8", chess.NoPieceType, "Ra8+"},
		{"mate", "6k1/5ppp/8/8/8/8/5PPP/4R2K w - - 0 1", "e1", "e8", chess.NoPieceType, "Re8#"},
		{"discovered check", "4k3/8/8/8/4N3/8/8/4RK2 w - - 0 1", "e4", "c5", chess.NoPieceType, "Nc5+"},
		{"double check", "4k3/8/8/8/4N3/8/8/4RK2 w - - 0 1", "e4", "f6", chess.NoPieceType, "Nf6+"},
		{"kingside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1", "g1", chess.NoPieceType, "O-O"},
		{"queenside castle", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8", "c8", chess.NoPieceType, "O-O-O"},
		{"underpromotion", "8/P6k/8/8/8/8/8/4K3 w - - 0 1", "a7", "a8", chess.Knight, "a8=N"},
		{"promotion check", "7k/P7/8/8/8/8/8/4K3 w - - 0 1", "a7", "a8", chess.Queen, "a8=Q+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := mustState(t, tt.fen)
			m := findMove(t, st, tt.from, tt.to, tt.promotion)
			if got := MoveSAN(st, m); got != tt.want {
				t.Errorf("MoveSAN(%s%s) = %q; want %q", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

// TestSANRoundTrip encodes every legal move in a few busy positions and
// checks the text decodes back to the same move.
func TestSANRoundTrip(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"4k3/8/8/8/8/1Q3Q2/8/1Q2K3 w - - 0 1",
	}

	for _, fen := range fens {
		st := mustState(t, fen)
		seen := map[string]bool{}
		for _, m := range engine.GenerateMoves(st) {
			san := MoveSAN(st, m)
			if seen[san] {
				t.Errorf("%s: SAN %q produced twice", fen, san)
			}
			seen[san] = true

			got, err := DecodeSAN(st, san)
			if err != nil {
				t.Errorf("%s: DecodeSAN(%q) error: %v", fen, san, err)
				continue
			}
			want := MoveSpec{From: m.From, To: m.To, Promotion: m.Promotion}
			if got != want {
				t.Errorf("%s: DecodeSAN(%q) = %+v; want %+v", fen, san, got, want)
			}
		}
	}
}

// findMove returns the legal move from -> to, failing the test if there is none.
func findMove(t *testing.T, st *chess.GameState, from, to string, promotion chess.PieceType) chess.Move {
	t.Helper()
	for _, m := range engine.GenerateMoves(st) {
		if m.From == chess.Sq(from) && m.To == chess.Sq(to) && m.Promotion == promotion {
			return m
		}
	}
	t.Fatalf("no legal move %s%s in %s", from, to, engine.StateToFEN(st))
	return chess.Move{}
}
