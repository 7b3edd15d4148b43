package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/perft"
)

// errDisagree reports that a cross-check found differences.
var errDisagree = fmt.Errorf("move generators disagree")

// newRunner builds a perft runner from the configured workers and table.
func newRunner(p config.PerftConfig) (*perft.Runner, *hashing.ThreadSafeTable) {
	opts := []perft.Option{perft.WithWorkers(p.Workers)}
	var table *hashing.ThreadSafeTable
	if p.HashEntries > 0 {
		table = hashing.NewThreadSafeTable(p.HashEntries)
		opts = append(opts, perft.WithTable(table))
	}
	return perft.NewRunner(opts...), table
}

// runPerft searches cfg.StartFEN to cfg.Perft.Depth and prints the node
// count, preceded by one line per root move when divide is set.
func runPerft(ctx context.Context, cfg *config.Config, logger *log.Logger, divide bool) error {
	board, err := engine.NewBoardFromFEN(cfg.StartFEN)
	if err != nil {
		return err
	}
	runner, table := newRunner(cfg.Perft)

	start := time.Now()
	results, err := runner.Divide(ctx, board, cfg.Perft.Depth)
	if err != nil {
		return errors.Wrapf(err, "perft depth %d", cfg.Perft.Depth)
	}
	elapsed := time.Since(start)

	w := cfg.OutputFile
	if divide {
		for _, r := range results {
			fmt.Fprintf(w, "%s: %d\n", r.Move, r.Nodes)
		}
		fmt.Fprintln(w)
	}
	total := perft.Total(results)
	fmt.Fprintf(w, "Nodes searched: %d\n", total)

	logger.Printf("depth %d: %d nodes in %v (%.0f nps)", cfg.Perft.Depth, total, elapsed, float64(total)/elapsed.Seconds())
	if table != nil {
		logger.Printf("hash: %d entries, %d hits", table.Len(), table.Hits())
	}
	return nil
}

// runVerify compares perft divide counts with dragontoothmg and the legal
// move set and status with notnil/chess.
func runVerify(cfg *config.Config, logger *log.Logger) error {
	w := cfg.OutputFile

	mismatches, err := perft.CrossCheckDivide(cfg.StartFEN, cfg.Perft.Depth)
	if err != nil {
		return err
	}
	for _, m := range mismatches {
		fmt.Fprintln(w, m)
	}
	fmt.Fprintf(w, "dragontoothmg depth %d: %d mismatches\n", cfg.Perft.Depth, len(mismatches))

	report, err := perft.CrossCheckPosition(cfg.StartFEN)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "notnil/chess: %s\n", report)

	if len(mismatches) > 0 || !report.Agree() {
		return errDisagree
	}
	logger.Printf("verified %s", cfg.StartFEN)
	return nil
}
