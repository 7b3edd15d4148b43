package hashing

import (
	"sync"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

func TestThreadSafeTable_Concurrent(t *testing.T) {
	table := NewThreadSafeTable(0)
	pos := mustPosition(t, engine.InitialFEN)

	const numWorkers = 10
	const probesPerWorker = 10

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := pos
			for j := 0; j < probesPerWorker; j++ {
				if _, ok := table.Probe(&local, 3); !ok {
					table.Store(&local, 3, 8902)
				}
			}
		}()
	}
	wg.Wait()

	if table.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", table.Len())
	}
	if nodes, ok := table.Probe(&pos, 3); !ok || nodes != 8902 {
		t.Errorf("Probe = %d, %v; want 8902, true", nodes, ok)
	}
}

func TestThreadSafeTable_DifferentPositions(t *testing.T) {
	table := NewThreadSafeTable(0)

	fens := []string{
		engine.InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		"rnbqkbnr/pppppppp/8/8/2P5/8/PP1PPPPP/RNBQKBNR b KQkq c3 0 1",
	}

	positions := make([]chess.Position, len(fens))
	for i, fen := range fens {
		positions[i] = mustPosition(t, fen)
	}

	var wg sync.WaitGroup
	for i := range positions {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			table.Store(&positions[idx], 1, uint64(idx))
		}(i)
	}
	wg.Wait()

	if table.Len() != len(fens) {
		t.Errorf("Expected %d entries, got %d", len(fens), table.Len())
	}
	for i := range positions {
		if nodes, ok := table.Probe(&positions[i], 1); !ok || nodes != uint64(i) {
			t.Errorf("Probe(%s) = %d, %v; want %d, true", fens[i], nodes, ok, i)
		}
	}
}

func TestThreadSafeTable_NoRace(t *testing.T) {
	table := NewThreadSafeTable(0)
	pos := mustPosition(t, engine.InitialFEN)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(depth int) {
			defer wg.Done()
			local := pos
			table.Store(&local, depth%4, 1)
			table.Probe(&local, depth%4)
			_ = table.Len()
			_ = table.Hits()
			_ = table.IsFull()
		}(i)
	}
	wg.Wait()
}

func TestThreadSafeTable_MaxCapacity(t *testing.T) {
	const capacity = 50
	const numWorkers = 10
	const perWorker = 20

	table := NewThreadSafeTable(capacity)
	base := mustPosition(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				// Distinct depths give distinct entries for one position.
				local := base
				table.Store(&local, workerID*perWorker+j, 1)
			}
		}(i)
	}
	wg.Wait()

	if !table.IsFull() {
		t.Errorf("Expected table to be full after %d stores (capacity %d)", numWorkers*perWorker, capacity)
	}
	if table.Len() != capacity {
		t.Errorf("Expected %d entries, got %d", capacity, table.Len())
	}
}
