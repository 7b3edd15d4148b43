package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

var benchFENs = map[string]string{
	"Initial":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkNewBoardFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewBoardFromFEN(fen)
			}
		})
	}
}

func BenchmarkFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board := mustBoard(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				board.FEN()
			}
		})
	}
}

func BenchmarkMakeUnmake(b *testing.B) {
	cases := []struct {
		name string
		fen  string
		move string
	}{
		{"PawnMove", benchFENs["Initial"], "e2e4"},
		{"PieceMove", benchFENs["Initial"], "g1f3"},
		{"KingsideCastle", benchFENs["Castling"], "e1g1"},
		{"QueensideCastle", benchFENs["Castling"], "e1c1"},
		{"EnPassant", benchFENs["EnPassant"], "f5e6"},
		{"Promotion", "8/P7/8/8/8/8/8/4K2k w - - 0 1", "a7a8q"},
	}

	for _, tt := range cases {
		b.Run(tt.name, func(b *testing.B) {
			board := mustBoard(b, tt.fen)
			m := mustMove(b, tt.move)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				board.MakeMove(m)
				_ = board.UnmakeMove()
			}
		})
	}
}

func BenchmarkGameReplay_ItalianOpening(b *testing.B) {
	moves := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board := NewBoard()
		if err := board.ApplyMoves(moves...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	checkFEN := "rnb1kbnr/pppp1ppp/8/4p3/7q/5P2/PPPPP1PP/RNBQKBNR w KQkq - 1 3"

	b.Run("NoCheck", func(b *testing.B) {
		pos := mustBoard(b, benchFENs["Initial"]).Position()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			IsInCheck(&pos, chess.White)
		}
	})

	b.Run("InCheck", func(b *testing.B) {
		pos := mustBoard(b, checkFEN).Position()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			IsInCheck(&pos, chess.White)
		}
	})
}

func BenchmarkHasLegalMoves(b *testing.B) {
	positions := []string{"Initial", "Midgame", "Endgame"}
	for _, name := range positions {
		b.Run(name, func(b *testing.B) {
			board := mustBoard(b, benchFENs[name])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				board.HasLegalMoves()
			}
		})
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board := mustBoard(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				board.LegalMoves()
			}
		})
	}
}

func BenchmarkClone(b *testing.B) {
	board := mustBoard(b, benchFENs["Midgame"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Clone()
	}
}
