// chessrules plays, checks and converts chess games: single positions from
// FEN, PGN or a move list, batches of PGN files, and an interactive session.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := run(cfg, flag.Args(), os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches to the mode selected by the flags.
func run(cfg *config.Config, args []string, stdin io.Reader) error {
	switch {
	case *replMode:
		return NewREPL(cfg).Run(stdin)

	case *batchMode:
		stats, err := processAllInputs(cfg, args, stdin)
		if err != nil {
			return err
		}
		reportStatistics(cfg, stats)
		return nil

	default:
		g, err := loadGame(*fenFlag, *pgnFile, *movesFlag)
		if err != nil {
			return err
		}
		if *perftDepth > 0 {
			return runPerft(cfg, g, *perftDepth, *divide)
		}
		return outputSingleGame(cfg, g)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options] [pgn-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays and checks chess games under the standard rules.\n\n")
	fmt.Fprintf(os.Stderr, "Modes:\n")
	fmt.Fprintf(os.Stderr, "  (default)  load -fen / -pgn, play -moves, print the game\n")
	fmt.Fprintf(os.Stderr, "  -perft N   count the move tree of that position\n")
	fmt.Fprintf(os.Stderr, "  -batch     replay every game in the PGN files (stdin if none)\n")
	fmt.Fprintf(os.Stderr, "  -repl      interactive session, type help for commands\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-format):\n")
	fmt.Fprintf(os.Stderr, "  san    Standard Algebraic Notation (default)\n")
	fmt.Fprintf(os.Stderr, "  lalg   Long algebraic (Ng1-f3)\n")
	fmt.Fprintf(os.Stderr, "  uci    Coordinate notation (g1f3, e7e8q)\n")
}
