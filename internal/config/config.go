// Package config provides configuration for the chess command-line tools.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// StartFEN is the position a new game starts from.
	StartFEN string `yaml:"start_fen"`

	Output OutputConfig `yaml:"output"`
	Perft  PerftConfig  `yaml:"perft"`

	// LogFilename names the diagnostics file; empty means LogFile as set.
	LogFilename string `yaml:"log_file,omitempty"`

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	LogFile    io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		StartFEN:   engine.InitialFEN,
		Output:     *NewOutputConfig(),
		Perft:      *NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer for rendered boards and command output.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer for diagnostics.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// OpenLog opens LogFilename for appending and makes it the log writer.
// It returns nil when no log file is named; otherwise the caller closes
// the returned file.
func (c *Config) OpenLog() (io.Closer, error) {
	if c.LogFilename == "" {
		return nil, nil
	}
	file, err := os.OpenFile(c.LogFilename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", c.LogFilename, err)
	}
	c.LogFile = file
	return file, nil
}

// Validate reports the first invalid setting, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if _, err := engine.ParseFEN(c.StartFEN); err != nil {
		return fmt.Errorf("%w: start_fen: %v", errors.ErrInvalidConfig, err)
	}
	if err := c.Output.validate(); err != nil {
		return err
	}
	return c.Perft.validate()
}
