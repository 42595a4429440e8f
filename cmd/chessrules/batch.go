package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// batchStats counts what happened to the games of a batch run.
type batchStats struct {
	Total      int // Games read
	Failed     int // Games with a move that could not be replayed
	Output     int // Games written
	Duplicates int // Games whose final position was already seen
}

func (s *batchStats) add(other batchStats) {
	s.Total += other.Total
	s.Failed += other.Failed
	s.Output += other.Output
	s.Duplicates += other.Duplicates
}

// batchContext carries what stays the same across the input files.
type batchContext struct {
	cfg      *config.Config
	detector *hashing.DuplicateDetector
	writer   output.GameWriter
}

// processAllInputs replays the games of every file in args, or of stdin if
// there are none. A file that cannot be opened is reported and skipped.
func processAllInputs(cfg *config.Config, args []string, stdin io.Reader) (batchStats, error) {
	ctx := &batchContext{
		cfg:    cfg,
		writer: output.NewGameWriter(cfg.OutputFile, cfg),
	}
	if cfg.Duplicate.Suppress {
		ctx.detector = hashing.NewDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.MaxCapacity)
	}

	var stats batchStats
	if len(args) == 0 {
		stats = replayBatch(processInput(stdin, "stdin", cfg), "stdin", ctx)
	} else {
		for _, filename := range args {
			file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", filename, err)
				continue
			}
			records := processInput(file, filename, cfg)
			file.Close() //nolint:errcheck,gosec // G104: read-only file

			stats.add(replayBatch(records, filename, ctx))
		}
	}

	return stats, ctx.writer.Close()
}

// processInput parses every game from a reader. Games that do not parse
// are logged and left out.
func processInput(r io.Reader, name string, cfg *config.Config) []*chess.GameRecord {
	p := notation.NewParser(r, cfg)
	records, err := p.ParseAllGames()
	if err != nil {
		cfg.Logf(1, "%s: %v\n", name, err)
	}
	for _, warning := range p.Warnings() {
		cfg.Logf(2, "%s: %s\n", name, warning)
	}
	return records
}

// replayBatch replays records on the worker pool and writes the games that
// survive. Results come back in input order, so duplicate detection always
// keeps the first copy.
func replayBatch(records []*chess.GameRecord, name string, ctx *batchContext) batchStats {
	cfg := ctx.cfg
	stats := batchStats{Total: len(records)}

	bufferSize := len(records)
	if bufferSize > 100 {
		bufferSize = 100
	}
	results := worker.ReplayAll(records, worker.Replay,
		worker.WithWorkers(cfg.Workers), worker.WithBufferSize(bufferSize))

	for _, result := range results {
		gameNumber := result.Index + 1
		if result.Err != nil {
			stats.Failed++
			cfg.Logf(1, "%s: game %d: %v\n", name, gameNumber, result.Err)
			continue
		}
		cfg.Logf(2, "%s: game %d: %d plies, %s\n", name, gameNumber, result.Plies, result.Status)

		if ctx.detector != nil && ctx.detector.CheckAndAddSignature(result.Signature) {
			stats.Duplicates++
			cfg.Logf(2, "%s: game %d: duplicate final position\n", name, gameNumber)
			continue
		}

		record := result.Record
		for tag, value := range cfg.HeaderOverrides {
			if tag != chess.ResultTag {
				record.SetTag(tag, value)
			}
		}
		if err := ctx.writer.WriteGame(record); err != nil {
			cfg.Logf(1, "%s: game %d: %v\n", name, gameNumber, err)
			continue
		}
		stats.Output++
	}
	return stats
}

// reportStatistics logs the final counts.
func reportStatistics(cfg *config.Config, stats batchStats) {
	if cfg.Duplicate.Suppress {
		cfg.Logf(1, "%d game(s) output, %d duplicate(s), %d failed, out of %d.\n",
			stats.Output, stats.Duplicates, stats.Failed, stats.Total)
		return
	}
	cfg.Logf(1, "%d game(s) output, %d failed, out of %d.\n", stats.Output, stats.Failed, stats.Total)
}
