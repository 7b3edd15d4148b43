// perft counts move generation leaf nodes and cross-checks them against
// other move generators.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/lgbarn/chessrules-go/internal/config"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	cfg := config.NewConfig()
	loadConfigFile(cfg)
	applyFlags(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, cfg)
	stop()
	os.Exit(code)
}

// execute runs the requested count or cross-check and returns the process
// exit code. The log file is closed before it returns.
func execute(ctx context.Context, cfg *config.Config) int {
	closer, err := cfg.OpenLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if closer != nil {
		defer closer.Close()
	}
	logger := log.New(cfg.LogFile, "perft: ", log.LstdFlags)

	if err := cfg.Validate(); err != nil {
		logger.Print(err)
		return 1
	}

	if *verify {
		err = runVerify(cfg, logger)
	} else {
		err = runPerft(ctx, cfg, logger, *divide)
	}
	if err != nil {
		logger.Print(err)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Count the positions reachable in a fixed number of plies.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
