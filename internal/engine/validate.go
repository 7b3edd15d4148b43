package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// IsValid reports whether m is legal in the current position.
//
// As a side effect, a move onto rank 1 or 8 without a promotion piece is
// given a queen of the mover's colour, and a promotion piece without a
// colour takes the mover's colour. Only a pawn actually promotes; other
// pieces carry the piece unused. Legality against own-king safety is
// decided by applying m, testing for check and undoing it.
func (b *Board) IsValid(m *chess.Move) bool {
	pos := &b.pos
	if !m.From.Valid() || !m.To.Valid() {
		return false
	}
	piece := pos.At(m.From)
	if piece.IsEmpty() || !CanMove(pos, m.From, m.To) {
		return false
	}
	mover := piece.Colour

	if chess.IsBackRank(m.To) && m.Promotion.IsEmpty() {
		m.Promotion = chess.NewPiece(mover, chess.Queen)
	}
	if m.IsPromotion() && m.Promotion.Colour == chess.NoColour {
		m.Promotion.Colour = mover
	}

	if isCastling(piece, *m) && !b.castlingPathSafe(piece, *m) {
		return false
	}
	if b.leavesInCheck(*m, mover) {
		return false
	}

	if piece.Type == chess.Pawn && chess.IsBackRank(m.To) {
		if m.Promotion.Colour != mover || m.Promotion.Type == chess.King {
			return false
		}
	}
	return true
}

// Validate is the error-returning form of IsValid. It returns the move
// as validated, with any defaulted promotion piece filled in.
func (b *Board) Validate(m chess.Move) (chess.Move, error) {
	text := m.String()
	if !b.IsValid(&m) {
		return m, &errors.MoveError{Err: errors.ErrIllegalMove, Move: text, Ply: b.Depth() + 1}
	}
	return m, nil
}

// leavesInCheck applies m, tests colour's king and always undoes m.
func (b *Board) leavesInCheck(m chess.Move, colour chess.Colour) bool {
	b.MakeMove(m)
	inCheck := IsInCheck(&b.pos, colour)
	_ = b.UnmakeMove() // just pushed, cannot be empty
	return inCheck
}

// castlingPathSafe rejects castling out of check or through a square the
// enemy attacks, using the same simulate-and-undo check as the landing
// square: the king is stepped one file towards its target.
func (b *Board) castlingPathSafe(king chess.Piece, m chess.Move) bool {
	if IsInCheck(&b.pos, king.Colour) {
		return false
	}
	transit := m.From.Offset(sign(m.To.File()-m.From.File()), 0)
	return !b.leavesInCheck(chess.NewMove(m.From, transit), king.Colour)
}

// isCastling reports whether m is a two-file king shift.
func isCastling(piece chess.Piece, m chess.Move) bool {
	return piece.Type == chess.King && abs(m.To.File()-m.From.File()) == 2 && m.To.Row() == m.From.Row()
}
