package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MakeMove applies m to the board without checking legality, after
// saving a snapshot that UnmakeMove restores. The origin square must hold
// a piece; use ApplyMove for untrusted input.
func (b *Board) MakeMove(m chess.Move) {
	b.saves = append(b.saves, b.pos)
	makeMove(&b.pos, m)
}

// UnmakeMove restores the position saved by the most recent MakeMove.
func (b *Board) UnmakeMove() error {
	n := len(b.saves)
	if n == 0 {
		return errors.ErrEmptyHistory
	}
	b.pos = b.saves[n-1]
	b.saves = b.saves[:n-1]
	return nil
}

// ApplyMove validates m against the current position and applies it.
// It returns the move as applied, with any defaulted promotion piece.
func (b *Board) ApplyMove(m chess.Move) (chess.Move, error) {
	m, err := b.Validate(m)
	if err != nil {
		return m, err
	}
	b.MakeMove(m)
	return m, nil
}

// UndoLastMove reverts the last applied move.
func (b *Board) UndoLastMove() error {
	if err := b.UnmakeMove(); err != nil {
		return &errors.MoveError{Err: err, Ply: b.Depth()}
	}
	return nil
}

// ApplyMoves applies a sequence of long algebraic moves, stopping at the
// first one that fails to parse or is illegal.
func (b *Board) ApplyMoves(moves ...string) error {
	for _, text := range moves {
		m, err := chess.ParseMove(text)
		if err != nil {
			return fmt.Errorf("ply %d: %w", b.Depth()+1, err)
		}
		if _, err := b.ApplyMove(m); err != nil {
			return err
		}
	}
	return nil
}

// makeMove performs every side effect of m on pos.
func makeMove(pos *chess.Position, m chess.Move) {
	piece := pos.At(m.From)
	colour := piece.Colour
	captured := pos.At(m.To)

	applyEnPassant(pos, piece, m)
	updateCastlingRights(pos, piece, captured, m)
	applyCastleRook(pos, piece, m)

	// Relocate, capturing whatever stood on the target.
	pos.Set(m.To, piece)
	pos.Clear(m.From)

	pos.ToMove = colour.Opposite()
	if colour == chess.Black {
		pos.FullmoveNumber++
	}

	// The clock also resets when the move gives check, not on captures.
	pos.HalfmoveClock++
	if piece.Type == chess.Pawn || IsInCheck(pos, pos.ToMove) {
		pos.HalfmoveClock = 0
	}

	if piece.Type == chess.Pawn && m.To.Row() == chess.PromotionRow(colour) {
		pos.Set(m.To, promotionPiece(m, colour))
	}
}

// applyEnPassant removes a pawn captured en passant, then records the
// new en passant target after a double push.
func applyEnPassant(pos *chess.Position, piece chess.Piece, m chess.Move) {
	isPawn := piece.Type == chess.Pawn
	dir := piece.Colour.Forward()

	if isPawn && pos.EnPassant != chess.NoSquare && m.To == pos.EnPassant {
		pos.Clear(m.To.Offset(0, -dir))
	}

	pos.EnPassant = chess.NoSquare
	if isPawn && m.To.Row()-m.From.Row() == 2*dir {
		pos.EnPassant = m.From.Offset(0, dir)
	}
}

// updateCastlingRights revokes rights lost by a king move, a rook leaving
// its corner or a rook being captured on its corner.
func updateCastlingRights(pos *chess.Position, piece, captured chess.Piece, m chess.Move) {
	if piece.Type == chess.King {
		pos.Castling.Revoke(piece.Colour)
	}
	for _, c := range chess.Castles {
		if piece.Type == chess.Rook && c.Colour == piece.Colour && c.RookFrom == m.From {
			pos.Castling[c.Right] = false
		}
		if captured.Type == chess.Rook && c.Colour == captured.Colour && c.RookFrom == m.To {
			pos.Castling[c.Right] = false
		}
	}
}

// applyCastleRook moves the corner rook when the king shifts two files.
func applyCastleRook(pos *chess.Position, piece chess.Piece, m chess.Move) {
	if piece.Type != chess.King || abs(m.To.File()-m.From.File()) != 2 {
		return
	}
	c, ok := chess.CastleByKingTarget(m.To)
	if !ok || c.KingFrom != m.From {
		return
	}
	pos.Set(c.RookTo, pos.At(c.RookFrom))
	pos.Clear(c.RookFrom)
}

// promotionPiece resolves the piece a promoting pawn becomes, defaulting
// to a queen of the mover's colour.
func promotionPiece(m chess.Move, colour chess.Colour) chess.Piece {
	p := m.Promotion
	if p.IsEmpty() {
		return chess.NewPiece(colour, chess.Queen)
	}
	if p.Colour == chess.NoColour {
		p.Colour = colour
	}
	return p
}
