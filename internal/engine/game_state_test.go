package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestWinState_Fixtures(t *testing.T) {
	for _, f := range testutil.LoadPositionFixtures(t, fixturePath) {
		if f.Result == "" {
			continue
		}
		f := f
		t.Run(f.Name, func(t *testing.T) {
			t.Parallel()
			board := mustBoard(t, f.FEN)
			testutil.AssertEqual(t, board.WinState().String(), f.Result, "win state of %s", f.FEN)
		})
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantState chess.WinState
		wantTerm  chess.Termination
	}{
		{"ongoing", InitialFEN, chess.Ongoing, chess.NoTermination},
		{"white mates", "r1bqkbnr/p1pp1Qpp/1pn5/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4", chess.WhiteWins, chess.Checkmate},
		{"black mates", "rnb1kbnr/pppp1ppp/8/4p3/5PPq/8/PPPPP2P/RNBQKBNR w KQkq - 1 3", chess.BlackWins, chess.Checkmate},
		{"stalemate", "8/8/2q5/K7/2k5/8/8/8 w - - 0 1", chess.Draw, chess.Stalemate},
		{"fifty moves", "8/8/8/4k3/8/8/8/R3K3 w - - 100 80", chess.Draw, chess.FiftyMoveRule},
		{"ninety-nine halfmoves", "8/8/8/4k3/8/8/8/R3K3 w - - 99 80", chess.Ongoing, chess.NoTermination},
		// Mate takes precedence over the clock.
		{"mate on the hundredth halfmove", "rnb1kbnr/pppp1ppp/8/4p3/5PPq/8/PPPPP2P/RNBQKBNR w KQkq - 100 60", chess.BlackWins, chess.Checkmate},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := mustBoard(t, tt.fen)
			state, term := board.Outcome()
			testutil.AssertEqual(t, state, tt.wantState)
			testutil.AssertEqual(t, term, tt.wantTerm)
		})
	}
}

func TestIsCheckmate_IsStalemate(t *testing.T) {
	mate := mustBoard(t, "rnb1kbnr/pppp1ppp/8/4p3/5PPq/8/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	testutil.AssertTrue(t, mate.IsCheckmate())
	testutil.AssertFalse(t, mate.IsStalemate())

	stale := mustBoard(t, "8/8/2q5/K7/2k5/8/8/8 w - - 0 1")
	testutil.AssertFalse(t, stale.IsCheckmate())
	testutil.AssertTrue(t, stale.IsStalemate())

	start := NewBoard()
	testutil.AssertFalse(t, start.IsCheckmate())
	testutil.AssertFalse(t, start.IsStalemate())
}

func TestWinState_AfterFoolsMate(t *testing.T) {
	board := NewBoard()
	if err := board.ApplyMoves("f2f3", "e7e5", "g2g4", "d8h4"); err != nil {
		t.Fatalf("ApplyMoves: %v", err)
	}
	testutil.AssertTrue(t, board.InCheck())
	testutil.AssertEqual(t, board.WinState(), chess.BlackWins)

	testutil.AssertNoError(t, board.UndoLastMove())
	testutil.AssertEqual(t, board.WinState(), chess.Ongoing)
}
