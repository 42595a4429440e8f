// Package worker replays many recorded games in parallel, each on its own
// game instance.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// WorkItem is one recorded game waiting to be replayed.
type WorkItem struct {
	Record *chess.GameRecord
	Index  int // Position in the input, for putting results back in order
}

// ProcessResult is the outcome of replaying one game.
type ProcessResult struct {
	Index  int
	Record *chess.GameRecord // The record as re-encoded after replay (nil on error)
	FEN    string            // Final position
	Plies  int               // Moves replayed before the end or the first failure
	Status string            // Status line of the final position
	Result string            // Result token computed from the final position
	Key    uint64            // Zobrist key of the final position
	Err    error

	// Signature identifies the final position for duplicate detection.
	Signature hashing.GameSignature
}

// ProcessFunc turns a work item into a result.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a fixed number of workers over a work channel.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are
// ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the capacity of the work and result channels.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool that runs processFunc on every submitted item.
// Without options it has one worker and a buffer of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain without replaying
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit queues an item without blocking. It returns false if the
// buffer is full or the pool was stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop makes workers skip the items still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop was called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and then closes the
// result channel. Results must be drained concurrently or Close can block.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the channel results arrive on, in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
