package testutil

import (
	"fmt"
	"os"
	"testing"

	"gopkg.in/yaml.v3"
)

// PositionFixture is one entry of a YAML position fixture file.
type PositionFixture struct {
	Name   string `yaml:"name"`
	FEN    string `yaml:"fen"`
	Result string `yaml:"result,omitempty"` // "1-0", "0-1", "1/2-1/2" or "*"

	// Expected legal move count; -1 when the fixture does not say.
	Moves int `yaml:"moves"`

	// Expected perft node counts indexed by depth-1.
	Perft []uint64 `yaml:"perft,flow,omitempty"`
}

// ReadPositionFixtures decodes a YAML list of position fixtures.
func ReadPositionFixtures(path string) ([]PositionFixture, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", path, err)
	}

	var raw []yaml.Node
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("'%s': %w", path, err)
	}

	fixtures := make([]PositionFixture, 0, len(raw))
	for i := range raw {
		f := PositionFixture{Moves: -1}
		if err := raw[i].Decode(&f); err != nil {
			return nil, fmt.Errorf("'%s' entry %d: %w", path, i+1, err)
		}
		if f.FEN == "" {
			return nil, fmt.Errorf("'%s' entry %d: missing fen", path, i+1)
		}
		if f.Name == "" {
			f.Name = f.FEN
		}
		fixtures = append(fixtures, f)
	}
	return fixtures, nil
}

// LoadPositionFixtures is ReadPositionFixtures that fails the test on error.
func LoadPositionFixtures(t testing.TB, path string) []PositionFixture {
	t.Helper()
	fixtures, err := ReadPositionFixtures(path)
	if err != nil {
		t.Fatalf("loading fixtures: %v", err)
	}
	return fixtures
}
