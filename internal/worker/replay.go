package worker

import (
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// Replay is the ProcessFunc used for batch replay. The record is played
// move by move on a fresh game; the first bad move stops the replay and is
// reported in Err with the position reached so far.
func Replay(item WorkItem) ProcessResult {
	result := ProcessResult{Index: item.Index}
	if item.Record == nil {
		result.Err = errors.Wrapf(errors.ErrParseFailure, "game %d: no record", item.Index)
		return result
	}

	g, err := game.Replay(item.Record)
	if g == nil {
		result.Err = err
		return result
	}
	result.Err = err

	final := g.State()
	result.FEN = g.FEN()
	result.Plies = final.PlyCount()
	result.Status = g.Status()
	result.Result = g.Result()
	result.Key = g.PositionKey()
	result.Signature = hashing.SignatureOf(&final)
	if result.Err == nil {
		result.Record = g.Record(item.Record.Tags)
	}
	return result
}

// ReplayAll runs process over records on a pool and returns the results in
// input order. A nil process means Replay.
func ReplayAll(records []*chess.GameRecord, process ProcessFunc, opts ...PoolOption) []ProcessResult {
	if process == nil {
		process = Replay
	}
	pool := NewPool(process, opts...)
	pool.Start()

	go func() {
		for i, record := range records {
			pool.Submit(WorkItem{Record: record, Index: i})
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(records))
	for result := range pool.Results() {
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
