package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// mustBoard loads fen or aborts the test.
func mustBoard(t testing.TB, fen string) *Board {
	t.Helper()
	b, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return b
}

// mustMove parses long algebraic text or aborts the test.
func mustMove(t testing.TB, text string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q) error: %v", text, err)
	}
	return m
}

func sq(an string) chess.Square {
	return chess.MustParseSquare(an)
}

func TestApplyMove(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		move    string
		wantFEN string
	}{
		{
			name:    "1.e4",
			fen:     InitialFEN,
			move:    "e2e4",
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:    "1.Nf3",
			fen:     InitialFEN,
			move:    "g1f3",
			wantFEN: "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		},
		{
			name:    "black reply increments fullmove",
			fen:     "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			move:    "g8f6",
			wantFEN: "rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 1 2",
		},
		{
			name:    "white kingside castle",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			move:    "e1g1",
			wantFEN: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 b kq - 1 1",
		},
		{
			name:    "white queenside castle",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			move:    "e1c1",
			wantFEN: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/2KR3R b kq - 1 1",
		},
		{
			name:    "black kingside castle",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1",
			move:    "e8g8",
			wantFEN: "r4rk1/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQ - 1 2",
		},
		{
			name:    "black queenside castle",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1",
			move:    "e8c8",
			wantFEN: "2kr3r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQ - 1 2",
		},
		{
			name:    "rook leaving h1 revokes kingside only",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPP1/R3K2R w KQkq - 0 1",
			move:    "h1h5",
			wantFEN: "r3k2r/pppppppp/8/7R/8/8/PPPPPPP1/R3K3 b Qkq - 1 1",
		},
		{
			name:    "capturing a corner rook revokes its right",
			fen:     "r3k2r/1ppppppp/8/8/8/8/1PPPPPPP/R3K2R w KQkq - 0 1",
			move:    "a1a8",
			wantFEN: "R3k2r/1ppppppp/8/8/8/8/1PPPPPPP/4K2R b Kk - 0 1",
		},
		{
			name:    "en passant capture",
			fen:     "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2",
			move:    "e5d6",
			wantFEN: "4k3/8/3P4/8/8/8/8/4K3 b - - 0 2",
		},
		{
			name:    "promotion defaults to queen",
			fen:     "8/P6k/8/8/8/8/8/K7 w - - 0 1",
			move:    "a7a8",
			wantFEN: "Q7/7k/8/8/8/8/8/K7 b - - 0 1",
		},
		{
			name:    "underpromotion",
			fen:     "8/P6k/8/8/8/8/8/K7 w - - 0 1",
			move:    "a7a8n",
			wantFEN: "N7/7k/8/8/8/8/8/K7 b - - 0 1",
		},
		{
			name:    "black promotion",
			fen:     "k7/8/8/8/8/8/7p/K7 b - - 3 40",
			move:    "h2h1r",
			wantFEN: "k7/8/8/8/8/8/8/K6r w - - 0 41",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := mustBoard(t, tt.fen)

			_, err := board.ApplyMove(mustMove(t, tt.move))
			testutil.AssertNoError(t, err, "ApplyMove(%s)", tt.move)
			testutil.AssertEqual(t, board.FEN(), tt.wantFEN)
			testutil.AssertEqual(t, board.Depth(), 1)
		})
	}
}

func TestMakeMove_HalfmoveClock(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want int
	}{
		{"quiet piece move increments", "4k3/8/8/8/8/8/8/R3K3 w - - 7 30", "a1b1", 8},
		{"pawn move resets", "4k3/8/8/8/8/8/P7/4K3 w - - 7 30", "a2a3", 0},
		// A capture that does not give check does not reset the clock.
		{"capture without check increments", "4k3/8/8/8/8/8/n7/R3K3 w - - 7 30", "a1a2", 8},
		{"check resets", "4k3/8/8/8/8/8/8/R3K3 w - - 7 30", "a1a8", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			board.MakeMove(mustMove(t, tt.move))
			pos := board.Position()
			testutil.AssertEqual(t, pos.HalfmoveClock, tt.want)
		})
	}
}

func TestMakeMove_EnPassantTarget(t *testing.T) {
	board := mustBoard(t, InitialFEN)

	board.MakeMove(mustMove(t, "e2e4"))
	testutil.AssertEqual(t, board.Position().EnPassant, sq("e3"))

	board.MakeMove(mustMove(t, "g8f6"))
	testutil.AssertEqual(t, board.Position().EnPassant, chess.NoSquare, "target lives for one ply")

	board.MakeMove(mustMove(t, "e4e5"))
	testutil.AssertEqual(t, board.Position().EnPassant, chess.NoSquare, "single push sets no target")

	board.MakeMove(mustMove(t, "d7d5"))
	testutil.AssertEqual(t, board.Position().EnPassant, sq("d6"))
}

func TestEnPassant_AfterDoublePush(t *testing.T) {
	board := mustBoard(t, "4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1")

	_, err := board.ApplyMove(mustMove(t, "d7d5"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, board.Position().EnPassant, sq("d6"))

	capture := mustMove(t, "e5d6")
	testutil.AssertTrue(t, board.At(sq("d6")).IsEmpty(), "target cell is empty before the capture")
	testutil.AssertTrue(t, board.IsValid(&capture), "en passant capture should be legal")

	board.MakeMove(capture)
	testutil.AssertEqual(t, board.At(sq("d6")), chess.W(chess.Pawn))
	testutil.AssertTrue(t, board.At(sq("d5")).IsEmpty(), "captured pawn should be removed")
	testutil.AssertTrue(t, board.At(sq("e5")).IsEmpty())
}

func TestEnPassant_ExpiresAfterOnePly(t *testing.T) {
	board := mustBoard(t, "4k3/3p4/8/4P3/8/8/7P/4K3 b - - 0 1")
	if err := board.ApplyMoves("d7d5", "h2h3", "e8e7"); err != nil {
		t.Fatalf("ApplyMoves: %v", err)
	}
	capture := mustMove(t, "e5d6")
	testutil.AssertFalse(t, board.IsValid(&capture), "en passant right should have expired")
}

func TestEnPassant_OnlyPawnsCapture(t *testing.T) {
	// A knight landing on the en passant square must not remove the pawn.
	board := mustBoard(t, "4k3/8/8/3pP3/2N5/8/8/4K3 w - d6 0 2")
	_, err := board.ApplyMove(mustMove(t, "c4d6"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, board.At(sq("d5")), chess.B(chess.Pawn))
}

func TestUnmakeMove_EmptyHistory(t *testing.T) {
	board := NewBoard()

	err := board.UnmakeMove()
	testutil.AssertErrorIs(t, err, errors.ErrEmptyHistory)

	err = board.UndoLastMove()
	testutil.AssertErrorIs(t, err, errors.ErrEmptyHistory)
	var moveErr *errors.MoveError
	testutil.AssertTrue(t, errors.As(err, &moveErr), "UndoLastMove should return a MoveError")
}

func TestUnmakeMove_RestoresEverything(t *testing.T) {
	board := mustBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	before := board.Position()

	moves := []string{"e1g1", "a6e2", "c3e2", "e8c8"}
	if err := board.ApplyMoves(moves...); err != nil {
		t.Fatalf("ApplyMoves: %v", err)
	}
	testutil.AssertEqual(t, board.Depth(), len(moves))

	for range moves {
		testutil.AssertNoError(t, board.UndoLastMove())
	}
	testutil.AssertEqual(t, board.Position(), before)
	testutil.AssertEqual(t, board.Depth(), 0)
}

// TestMakeUnmake_RoundTrip applies and reverts every legal move of a set
// of positions and requires an exact restore.
func TestMakeUnmake_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"k7/8/8/8/8/8/7p/K7 b - - 3 40",
	}

	for _, fen := range fens {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			board := mustBoard(t, fen)
			before := board.Position()

			for _, m := range board.LegalMoves() {
				board.MakeMove(m)
				if err := board.UnmakeMove(); err != nil {
					t.Fatalf("UnmakeMove after %s: %v", m, err)
				}
				testutil.AssertEqual(t, board.Position(), before, "after %s", m)
			}
			testutil.AssertEqual(t, board.Depth(), 0)
		})
	}
}

func TestApplyMove_Illegal(t *testing.T) {
	board := NewBoard()
	before := board.Position()

	_, err := board.ApplyMove(mustMove(t, "e2e5"))
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	testutil.AssertContains(t, err.Error(), "e2e5")
	testutil.AssertEqual(t, board.Position(), before, "illegal move must not change the board")
	testutil.AssertEqual(t, board.Depth(), 0)
}

func TestApplyMoves_StopsAtFirstFailure(t *testing.T) {
	board := NewBoard()

	err := board.ApplyMoves("e2e4", "e7e5", "zz99")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidNotation)
	testutil.AssertEqual(t, board.Depth(), 2)

	err = board.ApplyMoves("e1e3")
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	testutil.AssertEqual(t, board.Depth(), 2)
}

func TestClone_IsIndependent(t *testing.T) {
	board := NewBoard()
	if err := board.ApplyMoves("e2e4", "e7e5"); err != nil {
		t.Fatalf("ApplyMoves: %v", err)
	}

	clone := board.Clone()
	testutil.AssertEqual(t, clone.Position(), board.Position())
	testutil.AssertEqual(t, clone.Depth(), board.Depth())

	if err := clone.ApplyMoves("g1f3"); err != nil {
		t.Fatalf("clone ApplyMoves: %v", err)
	}
	testutil.AssertEqual(t, board.Depth(), 2, "original history must not grow")
	testutil.AssertTrue(t, board.At(sq("g1")) == chess.W(chess.Knight), "original board must not change")

	testutil.AssertNoError(t, clone.UndoLastMove())
	testutil.AssertNoError(t, clone.UndoLastMove())
	testutil.AssertNoError(t, clone.UndoLastMove())
	testutil.AssertEqual(t, board.Depth(), 2)
	testutil.AssertEqual(t, clone.FEN(), InitialFEN)
}

func TestLoad_DiscardsHistory(t *testing.T) {
	board := NewBoard()
	if err := board.ApplyMoves("d2d4"); err != nil {
		t.Fatalf("ApplyMoves: %v", err)
	}

	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)
	board.Load(pos)

	testutil.AssertEqual(t, board.Depth(), 0)
	testutil.AssertEqual(t, board.Position(), pos)
}
