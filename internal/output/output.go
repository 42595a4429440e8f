// Package output renders games and positions as PGN and JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// FormatPGN returns a game as PGN text.
func FormatPGN(game *chess.GameRecord, cfg *config.Config) string {
	var sb strings.Builder
	WritePGN(&sb, game, cfg)
	return sb.String()
}

// WritePGN writes a game as PGN: the tag block, a blank line, the wrapped
// move text ending in the result, then a blank line.
func WritePGN(w io.Writer, game *chess.GameRecord, cfg *config.Config) {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	if cfg.Output.TagFormat != config.NoTags {
		outputTags(game, cfg, w)
		fmt.Fprintln(w)
	}

	outputMoves(game, cfg, w)
	fmt.Fprintln(w)
}

// outputTags outputs the game tags.
func outputTags(game *chess.GameRecord, cfg *config.Config, w io.Writer) {
	for _, tag := range chess.SevenTagRoster {
		value := game.GetTag(tag)
		if value == "" {
			if tag == chess.ResultTag {
				value = gameResult(game)
			} else {
				value = chess.RosterDefaults[tag]
			}
		}
		fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(value))
	}

	if cfg.Output.TagFormat == config.SevenTagRoster {
		return
	}

	extra := maps.Keys(game.Tags)
	slices.Sort(extra)
	for _, tag := range extra {
		if chess.IsSevenTagRosterTag(tag) {
			continue
		}
		fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(game.Tags[tag]))
	}
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// outputMoves outputs the game moves.
func outputMoves(game *chess.GameRecord, cfg *config.Config, w io.Writer) {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))

	start := StartState(game)
	moveNum := start.MoveNumber
	isWhite := start.ToMove == chess.White

	texts := formatMoves(game, cfg.Output.Format)
	for i, text := range texts {
		if cfg.Output.KeepMoveNumbers {
			if isWhite {
				ow.Write(fmt.Sprintf("%d.", moveNum))
			} else if i == 0 {
				ow.Write(fmt.Sprintf("%d...", moveNum))
			}
		}

		ow.Write(text)

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}

	if cfg.Output.KeepResults {
		ow.Write(gameResult(game))
	}

	ow.NewLine()
}

// formatMoves returns the move text in the requested notation. Moves that
// cannot be replayed keep their recorded text.
func formatMoves(game *chess.GameRecord, format config.OutputFormat) []string {
	texts := make([]string, len(game.Moves))
	copy(texts, game.Moves)
	if format == config.SAN {
		return texts
	}

	_ = Replay(game, func(ply int, _ *chess.GameState, m chess.Move, _ *chess.GameState) {
		texts[ply-1] = formatMove(m, format)
	})
	return texts
}

// formatMove formats an applied move in the specified notation.
func formatMove(m chess.Move, format config.OutputFormat) string {
	switch format {
	case config.LALG:
		return notation.FormatLongAlgebraic(m)
	case config.UCI:
		return notation.FormatCoordinate(m)
	default:
		return m.Notation
	}
}

// gameResult returns the result of a game, checking the terminating result
// first.
func gameResult(game *chess.GameRecord) string {
	if game.Result != "" {
		return game.Result
	}
	if result := game.GetTag(chess.ResultTag); chess.IsResult(result) {
		return result
	}
	return chess.Unfinished
}

// StartState returns the position a record starts from: its FEN tag if
// that decodes, otherwise the standard start.
func StartState(game *chess.GameRecord) *chess.GameState {
	if fen := game.FEN(); fen != "" {
		if st, err := engine.NewStateFromFEN(fen); err == nil {
			return st
		}
	}
	return engine.NewInitialState()
}

// Replay plays a record's moves from its starting position, calling fn
// after each one with the 1-based ply, the states either side of the move
// and the applied move with its SAN filled in. It stops at the first move
// that does not decode or is illegal and returns that as a MoveError.
func Replay(game *chess.GameRecord, fn func(ply int, before *chess.GameState, m chess.Move, after *chess.GameState)) error {
	st := StartState(game)
	for i, text := range game.Moves {
		spec, err := notation.DecodeSAN(st, text)
		if err != nil {
			return &errors.MoveError{Err: err, Ply: i + 1, MoveText: text}
		}

		before := *st
		m := engine.ApplyMove(st, spec.From, spec.To, spec.Promotion)
		m.Notation = notation.EncodeSAN(&before, m, st)
		st.History = append(st.History, m)
		fn(i+1, &before, m, st)
	}
	return nil
}
