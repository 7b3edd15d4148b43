package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxPerftDepth bounds the configured perft depth.
const MaxPerftDepth = 10

// PerftConfig holds settings for the perft tool.
type PerftConfig struct {
	// Depth is the search depth in plies
	Depth int `yaml:"depth"`

	// Workers is the number of goroutines searching root moves
	Workers int `yaml:"workers"`

	// HashEntries caps the transposition table (0 disables it)
	HashEntries int `yaml:"hash_entries"`
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:       4,
		Workers:     runtime.NumCPU(),
		HashEntries: 1 << 20,
	}
}

func (p *PerftConfig) validate() error {
	switch {
	case p.Depth < 1 || p.Depth > MaxPerftDepth:
		return fmt.Errorf("%w: perft depth %d outside 1..%d", errors.ErrInvalidConfig, p.Depth, MaxPerftDepth)
	case p.Workers < 1:
		return fmt.Errorf("%w: perft workers %d is below 1", errors.ErrInvalidConfig, p.Workers)
	case p.HashEntries < 0:
		return fmt.Errorf("%w: perft hash_entries %d is negative", errors.ErrInvalidConfig, p.HashEntries)
	}
	return nil
}
