package chess

// CastlingRight indexes one of the four castling flags.
type CastlingRight int

const (
	WhiteKingside CastlingRight = iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// CastlingRights holds the four castling flags.
type CastlingRights [4]bool

// Revoke clears both rights of colour c.
func (cr *CastlingRights) Revoke(c Colour) {
	if c == White {
		cr[WhiteKingside] = false
		cr[WhiteQueenside] = false
	} else {
		cr[BlackKingside] = false
		cr[BlackQueenside] = false
	}
}

// Any reports whether at least one right is held.
func (cr CastlingRights) Any() bool {
	return cr[WhiteKingside] || cr[WhiteQueenside] || cr[BlackKingside] || cr[BlackQueenside]
}

// String returns the FEN castling field, "-" when no right is held.
func (cr CastlingRights) String() string {
	if !cr.Any() {
		return "-"
	}
	letters := [4]byte{'K', 'Q', 'k', 'q'}
	s := make([]byte, 0, 4)
	for i, held := range cr {
		if held {
			s = append(s, letters[i])
		}
	}
	return string(s)
}

// Castle describes one castling option: the king and rook squares
// before and after the move.
type Castle struct {
	Right    CastlingRight
	Colour   Colour
	KingFrom Square
	KingTo   Square
	RookFrom Square
	RookTo   Square
}

// Castles lists the four standard castling options, indexed by right.
var Castles = [4]Castle{
	WhiteKingside:  {WhiteKingside, White, E1, G1, H1, F1},
	WhiteQueenside: {WhiteQueenside, White, E1, C1, A1, D1},
	BlackKingside:  {BlackKingside, Black, E8, G8, H8, F8},
	BlackQueenside: {BlackQueenside, Black, E8, C8, A8, D8},
}

// CastleByKingTarget returns the castling option whose king lands on to.
func CastleByKingTarget(to Square) (Castle, bool) {
	for _, c := range Castles {
		if c.KingTo == to {
			return c, true
		}
	}
	return Castle{}, false
}

// Position is the full game state. It is a plain value: copying a
// Position copies the cell array, so a copy never aliases the original.
type Position struct {
	// Cells indexed by Square; NoPiece marks an empty cell.
	Cells [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	Castling CastlingRights

	// Square a pawn may capture onto en passant, or NoSquare.
	EnPassant Square

	// Halfmoves since the last pawn move (see engine.MakeMove for the
	// other reset condition).
	HalfmoveClock int

	// The current move number, starting at 1 and incremented after
	// each Black move.
	FullmoveNumber int
}

// NewPosition returns an empty board with White to move.
func NewPosition() Position {
	return Position{
		ToMove:         White,
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
	}
}

// At returns the piece on s.
func (p *Position) At(s Square) Piece {
	return p.Cells[s]
}

// Set places a piece on s.
func (p *Position) Set(s Square, piece Piece) {
	p.Cells[s] = piece
}

// Clear empties s.
func (p *Position) Clear(s Square) {
	p.Cells[s] = NoPiece
}

// IsEmpty reports whether s holds no piece.
func (p *Position) IsEmpty(s Square) bool {
	return p.Cells[s].IsEmpty()
}

// HasAlly reports whether s holds a piece of colour c.
func (p *Position) HasAlly(s Square, c Colour) bool {
	piece := p.Cells[s]
	return !piece.IsEmpty() && piece.Colour == c
}

// HasEnemy reports whether s holds a piece of the colour opposing c.
func (p *Position) HasEnemy(s Square, c Colour) bool {
	piece := p.Cells[s]
	return !piece.IsEmpty() && piece.Colour != c
}

// KingSquare returns the square of colour c's king, or NoSquare.
func (p *Position) KingSquare(c Colour) Square {
	king := NewPiece(c, King)
	for s := Square(0); s < NumSquares; s++ {
		if p.Cells[s] == king {
			return s
		}
	}
	return NoSquare
}

// IsBackRank reports whether s lies on rank 1 or rank 8.
func IsBackRank(s Square) bool {
	row := s.Row()
	return row == 0 || row == BoardSize-1
}

// PromotionRow returns the row on which pawns of colour c promote.
func PromotionRow(c Colour) int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnHomeRow returns the row pawns of colour c start on.
func PawnHomeRow(c Colour) int {
	if c == White {
		return BoardSize - 2
	}
	return 1
}
