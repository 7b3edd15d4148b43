// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
	NoColour // Unresolved colour, e.g. a promotion letter parsed from text
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta a pawn of this colour advances by.
// Rows count down from rank 8, so White moves towards row 0.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// PieceType represents a chess piece type.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (pt PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(pt) >= 0 && int(pt) < len(names) {
		return names[pt]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (pt PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(pt) >= 0 && int(pt) < len(letters) {
		return letters[pt]
	}
	return '?'
}

// PromotionTypes lists the piece types a pawn may promote to, in the
// order legal move enumeration produces them.
var PromotionTypes = [...]PieceType{Knight, Bishop, Rook, Queen}

// Piece is an immutable (type, colour) pair. The zero value is NoPiece
// and stands for an empty cell.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// NoPiece is the empty cell.
var NoPiece = Piece{}

// NewPiece creates a coloured piece value.
func NewPiece(colour Colour, pt PieceType) Piece {
	return Piece{Type: pt, Colour: colour}
}

// W creates a white piece.
func W(pt PieceType) Piece {
	return NewPiece(White, pt)
}

// B creates a black piece.
func B(pt PieceType) Piece {
	return NewPiece(Black, pt)
}

// IsEmpty reports whether p represents an empty cell.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// Letter returns the FEN letter for p: uppercase for White, lowercase
// for Black, and a space for an empty cell.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return ' '
	}
	l := p.Type.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// WinState is the result classification of a position.
type WinState int

const (
	Ongoing WinState = iota
	WhiteWins
	BlackWins
	Draw
)

// String returns the PGN style result for s.
func (s WinState) String() string {
	switch s {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Winner returns the state in which colour c has won.
func Winner(c Colour) WinState {
	if c == White {
		return WhiteWins
	}
	return BlackWins
}

// Termination names the rule that ended a game.
type Termination int

const (
	NoTermination Termination = iota
	Checkmate
	Stalemate
	FiftyMoveRule
)

// String returns the string representation of a termination reason.
func (t Termination) String() string {
	switch t {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case FiftyMoveRule:
		return "fifty-move rule"
	default:
		return "none"
	}
}
