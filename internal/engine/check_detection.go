package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked by any
// enemy piece. A position without that king is never in check.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	king := pos.KingSquare(colour)
	if king == chess.NoSquare {
		return false
	}
	return len(attackersOf(pos, king, colour.Opposite(), 1)) > 0
}

// Checkers returns the squares of the enemy pieces giving check to
// colour's king.
func Checkers(pos *chess.Position, colour chess.Colour) []chess.Square {
	king := pos.KingSquare(colour)
	if king == chess.NoSquare {
		return nil
	}
	return attackersOf(pos, king, colour.Opposite(), chess.NumSquares)
}

// attackersOf collects up to limit squares holding a piece of colour by
// that attacks target. The target should be occupied by the other side;
// pawns do not attack empty squares.
func attackersOf(pos *chess.Position, target chess.Square, by chess.Colour, limit int) []chess.Square {
	var found []chess.Square
	for s := chess.Square(0); s < chess.NumSquares && len(found) < limit; s++ {
		if !pos.HasAlly(s, by) {
			continue
		}
		if IsAttacking(pos, s, target) {
			found = append(found, s)
		}
	}
	return found
}
