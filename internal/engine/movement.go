package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// CanMove reports whether the piece on from may move to to by its
// movement pattern alone. The piece must belong to the side to move.
// Pawn pushes and en passant are handled here; everything else, including
// castling, is an attack as defined by IsAttacking. Leaving the mover's
// king in check is not considered.
func CanMove(pos *chess.Position, from, to chess.Square) bool {
	piece := pos.At(from)
	if piece.IsEmpty() || piece.Colour != pos.ToMove {
		return false
	}
	if piece.Type == chess.Pawn && canPawnMove(pos, piece.Colour, from, to) {
		return true
	}
	return IsAttacking(pos, from, to)
}

// canPawnMove covers the pawn moves that are not attacks: single and
// double pushes, and the diagonal step onto the en passant target.
func canPawnMove(pos *chess.Position, colour chess.Colour, from, to chess.Square) bool {
	ff, fr := from.Coord()
	tf, tr := to.Coord()
	dir := colour.Forward()

	switch {
	case tf == ff && tr-fr == dir:
		return pos.IsEmpty(to)
	case tf == ff && tr-fr == 2*dir:
		if fr != chess.PawnHomeRow(colour) {
			return false
		}
		return pos.IsEmpty(to) && pos.IsEmpty(from.Offset(0, dir))
	case abs(tf-ff) == 1 && tr-fr == dir:
		return pos.EnPassant != chess.NoSquare && to == pos.EnPassant
	}
	return false
}
