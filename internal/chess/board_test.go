package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				sq := Square{Row: row, Col: col}
				if got := b.Get(sq); got != Empty {
					t.Errorf("Get(%v) = %v; want Empty", sq, got)
				}
			}
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		name   string
		square string
		piece  Piece
	}{
		// White back rank
		{"white rook a1", "a1", W(Rook)},
		{"white knight b1", "b1", W(Knight)},
		{"white bishop c1", "c1", W(Bishop)},
		{"white queen d1", "d1", W(Queen)},
		{"white king e1", "e1", W(King)},
		{"white bishop f1", "f1", W(Bishop)},
		{"white knight g1", "g1", W(Knight)},
		{"white rook h1", "h1", W(Rook)},
		// Pawns
		{"white pawn a2", "a2", W(Pawn)},
		{"white pawn e2", "e2", W(Pawn)},
		{"black pawn a7", "a7", B(Pawn)},
		{"black pawn h7", "h7", B(Pawn)},
		// Black back rank
		{"black rook a8", "a8", B(Rook)},
		{"black queen d8", "d8", B(Queen)},
		{"black king e8", "e8", B(King)},
		{"black rook h8", "h8", B(Rook)},
		// Empty squares
		{"empty e3", "e3", Empty},
		{"empty d4", "d4", Empty},
		{"empty c6", "c6", Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Get(Sq(tt.square)); got != tt.piece {
				t.Errorf("Get(%s) = %v; want %v", tt.square, got, tt.piece)
			}
		})
	}

	t.Run("row orientation", func(t *testing.T) {
		if got := b.Squares[0][4]; got != B(King) {
			t.Errorf("Squares[0][4] = %v; want Black King", got)
		}
		if got := b.Squares[7][4]; got != W(King) {
			t.Errorf("Squares[7][4] = %v; want White King", got)
		}
	})
}

func TestBoardGetSet(t *testing.T) {
	t.Run("off-board get returns Empty", func(t *testing.T) {
		b := NewInitialBoard()
		for _, sq := range []Square{{-1, 0}, {0, 8}, {8, 8}, NoSquare} {
			if got := b.Get(sq); got != Empty {
				t.Errorf("Get(%v) = %v; want Empty", sq, got)
			}
		}
	})

	t.Run("off-board set is a no-op", func(t *testing.T) {
		b := NewInitialBoard()
		before := b
		b.Set(Square{Row: 9, Col: 9}, W(Queen))
		if b != before {
			t.Error("board changed after off-board Set")
		}
	})

	t.Run("set then get", func(t *testing.T) {
		b := NewBoard()
		b.Set(Sq("f6"), B(Knight))
		if got := b.Get(Sq("f6")); got != B(Knight) {
			t.Errorf("Get(f6) = %v; want Black Knight", got)
		}
		if b.IsEmpty(Sq("f6")) {
			t.Error("IsEmpty(f6) = true after Set")
		}
	})
}

func TestBoardCopy(t *testing.T) {
	original := NewInitialBoard()
	copied := original.Copy()

	copied.Set(Sq("e4"), W(Pawn))
	copied.Set(Sq("e2"), Empty)

	if got := original.Get(Sq("e4")); got != Empty {
		t.Errorf("original Get(e4) = %v after copy modification; want Empty", got)
	}
	if got := original.Get(Sq("e2")); got != W(Pawn) {
		t.Errorf("original Get(e2) = %v after copy modification; want White Pawn", got)
	}
}

func TestFindKing(t *testing.T) {
	b := NewInitialBoard()
	if sq, ok := b.FindKing(White); !ok || sq != Sq("e1") {
		t.Errorf("FindKing(White) = %v, %v; want e1, true", sq, ok)
	}
	if sq, ok := b.FindKing(Black); !ok || sq != Sq("e8") {
		t.Errorf("FindKing(Black) = %v, %v; want e8, true", sq, ok)
	}

	empty := NewBoard()
	if _, ok := empty.FindKing(White); ok {
		t.Error("FindKing on empty board reported a king")
	}
}

func TestPiecesOf(t *testing.T) {
	b := NewInitialBoard()
	if got := len(b.PiecesOf(White, Knight)); got != 2 {
		t.Errorf("len(PiecesOf(White, Knight)) = %d; want 2", got)
	}
	if got := len(b.PiecesOf(Black, NoPieceType)); got != 16 {
		t.Errorf("len(PiecesOf(Black, any)) = %d; want 16", got)
	}
}

func TestBoardString(t *testing.T) {
	b := NewInitialBoard()
	want := "rnbqkbnr\npppppppp\n........\n........\n........\n........\nPPPPPPPP\nRNBQKBNR\n"
	if got := b.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
