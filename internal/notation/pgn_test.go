package notation

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// parseTestGame is a helper that parses a PGN string and returns the game.
func parseTestGame(t *testing.T, pgn string) *chess.GameRecord {
	t.Helper()
	p := NewParser(strings.NewReader(pgn), config.NewConfig())
	game, err := p.ParseGame()
	if err != nil {
		t.Fatalf("ParseGame error: %v", err)
	}
	if game == nil {
		t.Fatal("Expected game, got nil")
	}
	return game
}

func TestParseSimpleGame(t *testing.T) {
	pgn := `[Event "Test"]
[Site "?"]
[Date "2024.01.01"]
[Round "1"]
[White "Player1"]
[Black "Player2"]
[Result "1-0"]

1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 1-0
`

	game := parseTestGame(t, pgn)

	if got := game.GetTag("Event"); got != "Test" {
		t.Errorf("Event = %q, want %q", got, "Test")
	}
	if got := game.GetTag("White"); got != "Player1" {
		t.Errorf("White = %q, want %q", got, "Player1")
	}

	want := []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6"}
	if diff := cmp.Diff(want, game.Moves); diff != "" {
		t.Errorf("Moves mismatch (-want +got):\n%s", diff)
	}
	if game.Result != "1-0" {
		t.Errorf("Result = %q, want %q", game.Result, "1-0")
	}
}

func TestParseFoolsMate(t *testing.T) {
	game := parseTestGame(t, `1. f3 e5 2. g4 Qh4# 0-1`)

	if count := game.PlyCount(); count != 4 {
		t.Errorf("PlyCount = %d, want 4", count)
	}
	if game.Result != "0-1" {
		t.Errorf("Result = %q, want %q", game.Result, "0-1")
	}
	if got := game.GetTag(chess.ResultTag); got != "0-1" {
		t.Errorf("Result tag = %q, want result token copied in", got)
	}
}

func TestParseDropsDecorations(t *testing.T) {
	tests := []struct {
		name string
		pgn  string
		want []string
	}{
		{"comments", "1. e4 {Best by test} e5 {multi\nline} 2. Nf3 *", []string{"e4", "e5", "Nf3"}},
		{"line comment", "1. e4 ; king pawn\ne5 *", []string{"e4", "e5"}},
		{"escape line", "% exported\n1. d4 d5 *", []string{"d4", "d5"}},
		{"variation", "1. e4 e5 (1... c5 2. Nf3) 2. Nf3 *", []string{"e4", "e5", "Nf3"}},
		{"nested variation", "1. e4 (1. d4 d5 (1... Nf6 2. c4)) 1... e5 *", []string{"e4", "e5"}},
		{"NAGs", "1. e4! e5? 2. Nf3!! $14 Nc6?? *", []string{"e4", "e5", "Nf3", "Nc6"}},
		{"check marks", "1. e4 f5 2. Qh5+ g6 *", []string{"e4", "f5", "Qh5", "g6"}},
		{"black move number", "1. e4 1... e5 2.Nf3 *", []string{"e4", "e5", "Nf3"}},
		{"zero castling", "1. e4 e5 2. Nf3 Nc6 3. Bc4 Bc5 4. 0-0 *", []string{"e4", "e5", "Nf3", "Nc6", "Bc4", "Bc5", "O-O"}},
		{"en passant suffix", "1. e4 a6 2. e5 d5 3. exd6 e.p. *", []string{"e4", "a6", "e5", "d5", "exd6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := parseTestGame(t, tt.pgn)
			if diff := cmp.Diff(tt.want, game.Moves); diff != "" {
				t.Errorf("Moves mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseTagEscapes(t *testing.T) {
	game := parseTestGame(t, `[Event "The \"Immortal\" Game"]
[Site "C:\\chess"]

1. e4 *`)

	if got := game.GetTag("Event"); got != `The "Immortal" Game` {
		t.Errorf("Event = %q", got)
	}
	if got := game.GetTag("Site"); got != `C:\chess` {
		t.Errorf("Site = %q", got)
	}
}

func TestParseMultipleGames(t *testing.T) {
	pgn := `[Event "Game 1"]
[Result "1-0"]

1. e4 e5 1-0

[Event "Game 2"]
[Result "0-1"]

1. d4 d5 0-1
`

	games, err := SplitGames(strings.NewReader(pgn))
	if err != nil {
		t.Fatalf("SplitGames error: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("len(games) = %d, want 2", len(games))
	}
	if got := games[0].GetTag("Event"); got != "Game 1" {
		t.Errorf("games[0].Event = %q, want %q", got, "Game 1")
	}
	if diff := cmp.Diff([]string{"d4", "d5"}, games[1].Moves); diff != "" {
		t.Errorf("games[1].Moves mismatch (-want +got):\n%s", diff)
	}
}

func TestParseGameWithoutResult(t *testing.T) {
	games, err := SplitGames(strings.NewReader("[Event \"A\"]\n1. e4\n[Event \"B\"]\n1. d4 *\n"))
	if err != nil {
		t.Fatalf("SplitGames error: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("len(games) = %d, want 2", len(games))
	}
	if games[0].Result != "" {
		t.Errorf("games[0].Result = %q, want none", games[0].Result)
	}
}

func TestParseBadGameIsSkipped(t *testing.T) {
	pgn := `[Event "Bad"]

1. e4 e5 2. Zz9 Nc6 *

[Event "Good"]

1. c4 *
`

	games, err := SplitGames(strings.NewReader(pgn))
	if !errors.Is(err, errors.ErrParseFailure) {
		t.Fatalf("err = %v, want ErrParseFailure", err)
	}
	if len(games) != 1 || games[0].GetTag("Event") != "Good" {
		t.Fatalf("games = %+v, want only the good game", games)
	}

	var perr *errors.ParseError
	if !errors.As(err, &perr) || perr.Got != "Zz9" {
		t.Errorf("ParseError = %+v, want Got %q", perr, "Zz9")
	}
}

func TestParsePGN(t *testing.T) {
	t.Run("first game only", func(t *testing.T) {
		game, err := ParsePGN("1. e4 *\n\n1. d4 *")
		if err != nil {
			t.Fatalf("ParsePGN error: %v", err)
		}
		if diff := cmp.Diff([]string{"e4"}, game.Moves); diff != "" {
			t.Errorf("Moves mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty text", func(t *testing.T) {
		game, err := ParsePGN("  \n")
		if err != nil {
			t.Fatalf("ParsePGN error: %v", err)
		}
		if game.PlyCount() != 0 || len(game.Tags) != 0 {
			t.Errorf("game = %+v, want empty record", game)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := ParsePGN("1. e4 @@@ e5"); !errors.Is(err, errors.ErrParseFailure) {
			t.Errorf("err = %v, want ErrParseFailure", err)
		}
	})
}

func TestParserWarnings(t *testing.T) {
	p := NewParser(strings.NewReader("1. e4 } e5 ) *"), nil)
	if _, err := p.ParseGame(); err != nil {
		t.Fatalf("ParseGame error: %v", err)
	}
	if got := len(p.Warnings()); got != 2 {
		t.Errorf("len(Warnings()) = %d, want 2: %q", got, p.Warnings())
	}
}

func TestNestedComments(t *testing.T) {
	cfg := config.NewConfig()
	cfg.AllowNestedComments = true
	p := NewParser(strings.NewReader("1. e4 {outer {inner} still outer} e5 *"), cfg)
	game, err := p.ParseGame()
	if err != nil {
		t.Fatalf("ParseGame error: %v", err)
	}
	if diff := cmp.Diff([]string{"e4", "e5"}, game.Moves); diff != "" {
		t.Errorf("Moves mismatch (-want +got):\n%s", diff)
	}
}
