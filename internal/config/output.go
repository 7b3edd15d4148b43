package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Unicode draws pieces with chess glyphs instead of FEN letters
	Unicode bool `yaml:"unicode"`

	// ShowCoordinates labels files and ranks around the board
	ShowCoordinates bool `yaml:"show_coordinates"`

	// ShowLegalMoves lists the legal moves after each board
	ShowLegalMoves bool `yaml:"show_legal_moves"`

	// MaxLineLength is the wrap width for move lists
	MaxLineLength uint `yaml:"max_line_length"`

	// JSONFormat enables JSON output instead of a drawn board
	JSONFormat bool `yaml:"json"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowCoordinates: true,
		MaxLineLength:   80,
	}
}

func (o *OutputConfig) validate() error {
	if o.MaxLineLength < 10 {
		return fmt.Errorf("%w: max_line_length %d is below 10", errors.ErrInvalidConfig, o.MaxLineLength)
	}
	return nil
}
