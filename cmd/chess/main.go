// chess is an interactive two-player chess board that enforces the rules.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	loadConfigFile(cfg)
	applyFlags(cfg)

	os.Exit(execute(cfg, os.Stdin))
}

// execute plays a session on cfg reading commands from in and returns
// the process exit code. The log file is closed before it returns.
func execute(cfg *config.Config, in io.Reader) int {
	closer, err := cfg.OpenLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if closer != nil {
		defer closer.Close()
	}
	logger := log.New(cfg.LogFile, "chess: ", log.LstdFlags)

	if err := cfg.Validate(); err != nil {
		logger.Print(err)
		return 1
	}

	if *dumpConfig {
		if err := cfg.Encode(cfg.OutputFile); err != nil {
			logger.Print(err)
			return 1
		}
		return 0
	}

	s, err := newSession(cfg, logger)
	if err != nil {
		logger.Print(err)
		return 1
	}
	if err := s.run(in); err != nil {
		logger.Print(err)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play a game of chess on the command line, one move per line.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprint(os.Stderr, commandHelp)
}
