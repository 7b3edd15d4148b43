// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Configuration
	configFile = flag.String("config", "", "YAML configuration file (flags override its values)")
	dumpConfig = flag.Bool("dump-config", false, "Print the effective configuration as YAML and exit")

	// Position
	startFEN = flag.String("fen", "", "Starting position in FEN (default: standard start)")

	// Output options
	unicodePieces = flag.Bool("unicode", false, "Draw pieces with chess glyphs")
	noCoords      = flag.Bool("nocoords", false, "Don't label files and ranks")
	showMoves     = flag.Bool("moves", false, "List legal moves after each board")
	jsonOutput    = flag.Bool("J", false, "Output positions in JSON format")
	lineLength    = flag.Int("w", 0, "Maximum line length for move lists (0 = configured value)")

	// Logging
	logFile = flag.String("l", "", "Append diagnostics to log file")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
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

// applyFlags applies explicitly set command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["fen"] {
		cfg.StartFEN = *startFEN
	}
	if set["unicode"] {
		cfg.Output.Unicode = *unicodePieces
	}
	if set["nocoords"] {
		cfg.Output.ShowCoordinates = !*noCoords
	}
	if set["moves"] {
		cfg.Output.ShowLegalMoves = *showMoves
	}
	if set["J"] {
		cfg.Output.JSONFormat = *jsonOutput
	}
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	if *logFile != "" {
		cfg.LogFilename = *logFile
	}
}
