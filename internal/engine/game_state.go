package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// FiftyMoveLimit is the halfmove clock value at which the game is drawn.
const FiftyMoveLimit = 100

// WinState classifies the current position: the side not to move wins
// if the side to move is checkmated, stalemate and the fifty-move rule
// are draws, anything else is ongoing.
func (b *Board) WinState() chess.WinState {
	state, _ := b.Outcome()
	return state
}

// Outcome is like WinState but also names the rule that ended the game.
func (b *Board) Outcome() (chess.WinState, chess.Termination) {
	if !b.HasLegalMoves() {
		if b.InCheck() {
			return chess.Winner(b.pos.ToMove.Opposite()), chess.Checkmate
		}
		return chess.Draw, chess.Stalemate
	}
	if b.pos.HalfmoveClock >= FiftyMoveLimit {
		return chess.Draw, chess.FiftyMoveRule
	}
	return chess.Ongoing, chess.NoTermination
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func (b *Board) IsCheckmate() bool {
	return b.InCheck() && !b.HasLegalMoves()
}

// IsStalemate returns true if the position is stalemate for the side to move.
func (b *Board) IsStalemate() bool {
	return !b.InCheck() && !b.HasLegalMoves()
}
