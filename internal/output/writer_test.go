package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

func parseTestGame(t *testing.T, pgn string) *chess.GameRecord {
	t.Helper()
	game, err := notation.ParsePGN(pgn)
	if err != nil {
		t.Fatalf("ParsePGN error: %v", err)
	}
	return game
}

const fischerGame = `
[Event "Test"]
[Site "Test"]
[Date "2024.01.01"]
[Round "1"]
[White "Fischer"]
[Black "Spassky"]
[Result "1-0"]

1. e4 e5 2. Nf3 1-0
`

// TestPGNWriter_WriteGame verifies PGN writer outputs correct format
func TestPGNWriter_WriteGame(t *testing.T) {
	game := parseTestGame(t, fischerGame)

	var buf bytes.Buffer
	writer := NewPGNWriter(&buf, config.NewConfig())
	if err := writer.WriteGame(game); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{`[Event "Test"]`, `[White "Fischer"]`, "1. e4 e5 2. Nf3 1-0"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

// TestJSONWriter_WriteGame verifies JSON writer outputs correct format
func TestJSONWriter_WriteGame(t *testing.T) {
	game := parseTestGame(t, fischerGame)

	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)
	if err := writer.WriteGame(game); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Error("JSONWriter wrote before Flush")
	}
	if err := writer.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(out.Games) != 1 {
		t.Fatalf("len(Games) = %d, want 1", len(out.Games))
	}
	if got := out.Games[0].Tags["White"]; got != "Fischer" {
		t.Errorf("White = %q, want Fischer", got)
	}
}

// TestJSONWriterSingle writes each game as its own document
func TestJSONWriterSingle(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriterSingle(&buf)
	for i := 0; i < 2; i++ {
		if err := writer.WriteGame(parseTestGame(t, "1. d4 *")); err != nil {
			t.Fatalf("WriteGame failed: %v", err)
		}
	}

	dec := json.NewDecoder(&buf)
	count := 0
	for dec.More() {
		var g JSONGame
		if err := dec.Decode(&g); err != nil {
			t.Fatalf("Decode: %v", err)
		}
		count++
	}
	if count != 2 {
		t.Errorf("decoded %d documents, want 2", count)
	}
}

// TestGameWriter_Interface verifies that writers implement the interface
func TestGameWriter_Interface(t *testing.T) {
	var buf bytes.Buffer
	var _ GameWriter = NewPGNWriter(&buf, config.NewConfig())
	var _ GameWriter = NewJSONWriter(&buf)

	cfg := config.NewConfig()
	if _, ok := NewGameWriter(&buf, cfg).(*PGNWriter); !ok {
		t.Error("NewGameWriter did not pick PGN by default")
	}
	cfg.Output.JSONFormat = true
	if _, ok := NewGameWriter(&buf, cfg).(*JSONWriter); !ok {
		t.Error("NewGameWriter did not pick JSON")
	}
}

// TestJSONWriter_Close verifies Close flushes pending games
func TestJSONWriter_Close(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)
	if err := writer.WriteGame(parseTestGame(t, "1. e4 *")); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Expected output after Close")
	}
}

// TestPGNWriter_FlushClose verifies the no-op methods
func TestPGNWriter_FlushClose(t *testing.T) {
	var buf bytes.Buffer
	writer := NewPGNWriter(&buf, config.NewConfig())
	if err := writer.Flush(); err != nil {
		t.Errorf("Flush failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}
