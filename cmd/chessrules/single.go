package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// loadGame builds the game described by the -fen, -pgn and -moves flags.
// A PGN file takes precedence over a FEN; moves are played on top.
func loadGame(fen, pgnPath, moves string) (*game.Game, error) {
	g := game.New()

	switch {
	case pgnPath != "":
		data, err := os.ReadFile(pgnPath) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return nil, err
		}
		if err := g.LoadPGN(string(data)); err != nil {
			return nil, fmt.Errorf("%s: %w", pgnPath, err)
		}
	case fen != "":
		if err := g.LoadFEN(fen); err != nil {
			return nil, err
		}
	}

	for _, text := range strings.Fields(moves) {
		if isMoveNumber(text) {
			continue
		}
		if err := playMove(g, text); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// playMove plays text as coordinate notation if it reads as such, else as SAN.
func playMove(g *game.Game, text string) error {
	if _, err := notation.ParseCoordinate(text); err == nil {
		return g.MakeCoordinateMove(text)
	}
	return g.MakeSANMove(text)
}

// isMoveNumber reports tokens like "12." or "12..." in a pasted move list.
func isMoveNumber(text string) bool {
	digits := strings.TrimRight(text, ".")
	if digits == text || digits == "" {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// outputSingleGame writes the game as PGN, or its current state as JSON.
func outputSingleGame(cfg *config.Config, g *game.Game) error {
	cfg.Logf(1, "%s\n", g.Status())

	if cfg.Output.JSONFormat {
		st := g.State()
		return output.WriteStateJSON(cfg.OutputFile, &st)
	}
	output.WritePGN(cfg.OutputFile, g.Record(cfg.HeaderOverrides), cfg)
	return nil
}

// runPerft prints the perft count of the game's position, and with divide
// the count below each root move in coordinate notation.
func runPerft(cfg *config.Config, g *game.Game, depth int, divide bool) error {
	if divide {
		st := g.State()
		counts := engine.Divide(&st, depth)
		moves := maps.Keys(counts)
		slices.Sort(moves)
		for _, m := range moves {
			fmt.Fprintf(cfg.OutputFile, "%s: %d\n", m, counts[m])
		}
	}

	nodes := g.Perft(depth)
	fmt.Fprintf(cfg.OutputFile, "perft(%d) = %d\n", depth, nodes)
	cfg.Logf(2, "%s\n", g.FEN())
	return nil
}
