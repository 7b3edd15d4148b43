package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Board owns a game position and the stack of snapshots taken before
// each applied move. A Board is not safe for concurrent use; fork it
// with Clone for independent exploration.
type Board struct {
	pos chess.Position

	// saves[i] is the position before the (i+1)th applied move.
	saves []chess.Position
}

// NewBoard creates a board set up in the standard starting position.
func NewBoard() *Board {
	b, err := NewBoardFromFEN(InitialFEN)
	if err != nil {
		panic(err) // InitialFEN is a constant
	}
	return b
}

// NewBoardFromPosition creates a board holding pos with an empty history.
func NewBoardFromPosition(pos chess.Position) *Board {
	b := &Board{}
	b.Load(pos)
	return b
}

// Load replaces the current state wholesale and discards the history.
// The position is trusted to be well formed, with one king per side.
func (b *Board) Load(pos chess.Position) {
	b.pos = pos
	b.saves = b.saves[:0]
}

// Position returns a copy of the current position.
func (b *Board) Position() chess.Position {
	return b.pos
}

// ToMove returns the side to move.
func (b *Board) ToMove() chess.Colour {
	return b.pos.ToMove
}

// At returns the piece on s.
func (b *Board) At(s chess.Square) chess.Piece {
	return b.pos.At(s)
}

// Depth returns the number of applied moves that can still be undone.
func (b *Board) Depth() int {
	return len(b.saves)
}

// InCheck reports whether the side to move is in check.
func (b *Board) InCheck() bool {
	return IsInCheck(&b.pos, b.pos.ToMove)
}

// Checkers returns the squares of the pieces checking the side to move.
func (b *Board) Checkers() []chess.Square {
	return Checkers(&b.pos, b.pos.ToMove)
}

// FEN returns the FEN string of the current position.
func (b *Board) FEN() string {
	return FEN(&b.pos)
}

// Clone returns an independent copy of b, history included.
func (b *Board) Clone() *Board {
	c := &Board{pos: b.pos}
	if len(b.saves) > 0 {
		c.saves = make([]chess.Position, len(b.saves))
		copy(c.saves, b.saves)
	}
	return c
}
