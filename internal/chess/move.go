package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Move is a from/to square pair with an optional promotion piece.
type Move struct {
	From Square
	To   Square

	// The piece a pawn reaching the back rank becomes; NoPiece if none
	// has been chosen yet.
	Promotion Piece
}

// NewMove creates a move without a promotion piece.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// NewPromotion creates a move promoting to the given piece.
func NewPromotion(from, to Square, promotion Piece) Move {
	return Move{From: from, To: to, Promotion: promotion}
}

// Equal reports whether m and o join the same squares. The promotion
// piece is deliberately ignored; compare with == when it matters.
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To
}

// IsPromotion reports whether m carries a promotion piece.
func (m Move) IsPromotion() bool {
	return !m.Promotion.IsEmpty()
}

// String returns the long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += strings.ToLower(string(m.Promotion.Type.Letter()))
	}
	return s
}

// ParseMove parses long algebraic input such as "e2e4", "e2 e4" or
// "e7e8q". A promotion letter yields a piece with NoColour; validation
// assigns it the mover's colour.
func ParseMove(text string) (Move, error) {
	fields := strings.Fields(strings.ToLower(text))
	compact := strings.Join(fields, "")
	if len(compact) != 4 && len(compact) != 5 {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidNotation)
	}
	from, err := ParseSquare(compact[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, err)
	}
	to, err := ParseSquare(compact[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, err)
	}
	m := NewMove(from, to)
	if len(compact) == 5 {
		pt := pieceTypeFromLetter(compact[4])
		if pt == NoPieceType {
			return Move{}, fmt.Errorf("move %q: promotion %q: %w", text, compact[4], errors.ErrMalformedPiece)
		}
		m.Promotion = NewPiece(NoColour, pt)
	}
	return m, nil
}

// PieceFromLetter converts a FEN letter to a piece; uppercase is White.
func PieceFromLetter(c byte) (Piece, error) {
	pt := pieceTypeFromLetter(c)
	if pt == NoPieceType {
		return NoPiece, fmt.Errorf("piece %q: %w", c, errors.ErrMalformedPiece)
	}
	if c >= 'a' && c <= 'z' {
		return B(pt), nil
	}
	return W(pt), nil
}

func pieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPieceType
	}
}
