// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// tagFlags collects repeated -tag Name=Value options.
type tagFlags map[string]string

func (t tagFlags) String() string {
	pairs := make([]string, 0, len(t))
	for name, value := range t {
		pairs = append(pairs, name+"="+value)
	}
	return strings.Join(pairs, ",")
}

func (t tagFlags) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("tag %q: want Name=Value", s)
	}
	t[name] = value
	return nil
}

var (
	// Position and moves
	fenFlag   = flag.String("fen", "", "Start from this FEN position")
	movesFlag = flag.String("moves", "", "Moves to play, SAN or coordinate, separated by spaces")
	pgnFile   = flag.String("pgn", "", "Load the first game of this PGN file")

	// Modes
	batchMode  = flag.Bool("batch", false, "Replay every game in the PGN files given as arguments")
	perftDepth = flag.Int("perft", 0, "Count leaf nodes of the move tree to this depth")
	divide     = flag.Bool("divide", false, "With -perft, print the count below each root move")
	replMode   = flag.Bool("repl", false, "Start an interactive session")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput   = flag.Bool("json", false, "Output in JSON format")
	lineLength   = flag.Int("linelength", 80, "Maximum PGN line length")
	outputFormat = flag.String("format", "san", "Move notation in PGN output: san, lalg, uci")
	sevenTagOnly = flag.Bool("7", false, "Output only the seven tag roster")
	noTags       = flag.Bool("notags", false, "Don't output any tags")
	noResults    = flag.Bool("noresults", false, "Don't output results")
	tags         = tagFlags{}

	// Batch options
	workers            = flag.Int("workers", 0, "Number of replay workers (0 = number of CPUs)")
	suppressDuplicates = flag.Bool("D", false, "Drop games whose final position was already seen")
	exactDuplicates    = flag.Bool("exact", false, "Duplicates must also have the same ply count")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum remembered positions (0 = unlimited)")
	nestedComments     = flag.Bool("nestedcomments", false, "Allow nested comments in PGN parsing")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 summary, 2 per game")
	quiet     = flag.Bool("s", false, "Silent mode, same as -v 0")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

func init() {
	flag.Var(tags, "tag", "Set a PGN tag on output, Name=Value (repeatable)")
}

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyTagOutputFlags(cfg)
	applyContentFlags(cfg)
	applyDuplicateFlags(cfg)
	if err := applyOutputFormatFlags(cfg); err != nil {
		return err
	}

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	cfg.AllowNestedComments = *nestedComments
	for name, value := range tags {
		cfg.HeaderOverrides[name] = value
	}
	return nil
}

// applyTagOutputFlags configures tag output settings.
func applyTagOutputFlags(cfg *config.Config) {
	switch {
	case *noTags:
		cfg.Output.TagFormat = config.NoTags
	case *sevenTagOnly:
		cfg.Output.TagFormat = config.SevenTagRoster
	}
}

// applyContentFlags configures content output settings.
func applyContentFlags(cfg *config.Config) {
	cfg.Output.KeepResults = !*noResults
	cfg.Output.JSONFormat = *jsonOutput
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
}

// applyOutputFormatFlags configures the move notation.
func applyOutputFormatFlags(cfg *config.Config) error {
	format, ok := config.ParseOutputFormat(*outputFormat)
	if !ok {
		return fmt.Errorf("unknown output format %q (want san, lalg or uci)", *outputFormat)
	}
	cfg.Output.Format = format
	return nil
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.ExactMatch = *exactDuplicates
	cfg.Duplicate.MaxCapacity = *duplicateCapacity
}
