package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns every legal move for the side to move, origin-major
// then target-minor. A pawn reaching the back rank yields one move per
// promotion type, ordered Knight, Bishop, Rook, Queen.
func (b *Board) LegalMoves() []chess.Move {
	var moves []chess.Move
	b.forEachCandidate(func(m chess.Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (b *Board) HasLegalMoves() bool {
	found := false
	b.forEachCandidate(func(chess.Move) bool {
		found = true
		return false
	})
	return found
}

// LegalMovesFrom returns the legal moves of the piece standing on from.
func (b *Board) LegalMovesFrom(from chess.Square) []chess.Move {
	var moves []chess.Move
	for _, m := range b.LegalMoves() {
		if m.From == from {
			moves = append(moves, m)
		}
	}
	return moves
}

// forEachCandidate calls fn with each legal move in enumeration order
// until fn returns false.
func (b *Board) forEachCandidate(fn func(chess.Move) bool) {
	colour := b.pos.ToMove
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		piece := b.pos.At(from)
		if piece.IsEmpty() || piece.Colour != colour {
			continue
		}
		for to := chess.Square(0); to < chess.NumSquares; to++ {
			if piece.Type == chess.Pawn && chess.IsBackRank(to) {
				for _, pt := range chess.PromotionTypes {
					m := chess.NewPromotion(from, to, chess.NewPiece(colour, pt))
					if b.IsValid(&m) && !fn(m) {
						return
					}
				}
				continue
			}
			// IsValid may attach a queen to a back-rank move; the
			// enumerated move stays bare.
			m := chess.NewMove(from, to)
			checked := m
			if b.IsValid(&checked) && !fn(m) {
				return
			}
		}
	}
}
