// Package perft counts the leaf nodes of the legal move tree, the
// standard correctness check for a move generator.
package perft

import (
	"context"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Result is the node count below one root move.
type Result struct {
	Move  chess.Move
	Nodes uint64
}

// Count returns the number of leaf nodes depth plies below the board's
// current position. The board is restored before Count returns.
func Count(b *engine.Board, depth int) uint64 {
	return count(b, depth, nil)
}

// Divide returns the per-root-move node counts at depth, in legal move
// enumeration order.
func Divide(b *engine.Board, depth int) []Result {
	if depth < 1 {
		return nil
	}
	moves := b.LegalMoves()
	results := make([]Result, 0, len(moves))
	for _, m := range moves {
		b.MakeMove(m)
		results = append(results, Result{Move: m, Nodes: count(b, depth-1, nil)})
		_ = b.UnmakeMove()
	}
	return results
}

// Total sums the node counts of results.
func Total(results []Result) uint64 {
	var n uint64
	for _, r := range results {
		n += r.Nodes
	}
	return n
}

func count(b *engine.Board, depth int, table *hashing.ThreadSafeTable) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	pos := b.Position()
	if table != nil {
		if n, ok := table.Probe(&pos, depth); ok {
			return n
		}
	}

	var n uint64
	for _, m := range moves {
		b.MakeMove(m)
		n += count(b, depth-1, table)
		_ = b.UnmakeMove()
	}

	if table != nil {
		table.Store(&pos, depth, n)
	}
	return n
}

// Runner runs perft in parallel, one clone of the board per root move.
type Runner struct {
	workers int
	table   *hashing.ThreadSafeTable
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n >= 1 {
			r.workers = n
		}
	}
}

// WithTable shares a transposition table between the workers.
func WithTable(t *hashing.ThreadSafeTable) Option {
	return func(r *Runner) {
		r.table = t
	}
}

// NewRunner creates a Runner. Default: one worker per CPU, no table.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Divide is the parallel form of the package-level Divide. The board is
// only read; every worker searches its own clone. Cancelling ctx stops
// further root moves from being searched and returns ctx.Err().
func (r *Runner) Divide(ctx context.Context, b *engine.Board, depth int) ([]Result, error) {
	if depth < 1 {
		return nil, nil
	}
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return nil, nil
	}

	pool := worker.NewPoolWithOptions(r.process(ctx),
		worker.WithWorkers(r.workers),
		worker.WithBufferSize(len(moves)),
	)
	pool.Start()

	go func() {
		defer pool.Close()
		for i, m := range moves {
			if ctx.Err() != nil {
				pool.Stop()
				return
			}
			clone := b.Clone()
			clone.MakeMove(m)
			pool.Submit(worker.WorkItem{Board: clone, Move: m, Depth: depth - 1, Index: i})
		}
	}()

	results := make([]Result, len(moves))
	var firstErr error
	for res := range pool.Results() {
		if res.Error != nil {
			if firstErr == nil {
				firstErr = res.Error
			}
			continue
		}
		results[res.Index] = Result{Move: res.Move, Nodes: res.Nodes}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// Count is the parallel form of the package-level Count.
func (r *Runner) Count(ctx context.Context, b *engine.Board, depth int) (uint64, error) {
	if depth < 1 {
		return 1, nil
	}
	results, err := r.Divide(ctx, b, depth)
	if err != nil {
		return 0, err
	}
	return Total(results), nil
}

func (r *Runner) process(ctx context.Context) worker.ProcessFunc {
	return func(item worker.WorkItem) worker.ProcessResult {
		res := worker.ProcessResult{Move: item.Move, Index: item.Index}
		if err := ctx.Err(); err != nil {
			res.Error = err
			return res
		}
		res.Nodes = count(item.Board, item.Depth, r.table)
		return res
	}
}
