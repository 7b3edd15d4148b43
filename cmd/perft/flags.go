// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	configFile = flag.String("config", "", "YAML configuration file (flags override its values)")

	// Search options
	startFEN    = flag.String("fen", "", "Position to search in FEN (default: standard start)")
	depth       = flag.Int("depth", 0, "Search depth in plies (0 = configured value)")
	workers     = flag.Int("workers", 0, "Number of worker goroutines (0 = configured value)")
	hashEntries = flag.Int("hash", -1, "Transposition table entries (0 = disabled, -1 = configured value)")
	divide      = flag.Bool("divide", false, "Print the node count below each root move")
	verify      = flag.Bool("verify", false, "Compare move generation with dragontoothmg and notnil/chess")

	// Logging
	logFile = flag.String("l", "", "Append diagnostics to log file")

	help = flag.Bool("h", false, "Show help")
)

// loadConfigFile overlays the -config file, if any, onto cfg.
func loadConfigFile(cfg *config.Config) {
	if *configFile == "" {
		return
	}
	if err := cfg.LoadFile(*configFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config file: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	if *startFEN != "" {
		cfg.StartFEN = *startFEN
	}
	if *depth > 0 {
		cfg.Perft.Depth = *depth
	}
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
	if *hashEntries >= 0 {
		cfg.Perft.HashEntries = *hashEntries
	}
	if *logFile != "" {
		cfg.LogFilename = *logFile
	}
}
