package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestExecute(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		depth    int
		wantCode int
		wantLog  string
	}{
		{"counts the start position", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 1, 0, ""},
		{"invalid start position", "not a fen", 1, 1, "invalid configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logName := filepath.Join(t.TempDir(), "perft.log")
			var out bytes.Buffer
			cfg := testConfig(tt.fen, tt.depth, &out)
			cfg.LogFilename = logName

			testutil.AssertEqual(t, execute(context.Background(), cfg), tt.wantCode)

			data, err := os.ReadFile(logName)
			testutil.AssertNoError(t, err)
			if tt.wantLog != "" {
				testutil.AssertContains(t, string(data), tt.wantLog)
			}
			if tt.wantCode == 0 {
				testutil.AssertContains(t, out.String(), "Nodes searched: 20")
			}
		})
	}
}
