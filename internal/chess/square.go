package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Square is a board index in [0,64), row-major from a8: a8=0, h8=7,
// a1=56, h1=63.
type Square int8

// NoSquare marks an absent square, such as no en passant target.
const NoSquare Square = -1

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	ColBase  = 'a'
	RankBase = '1'
)

// Squares referenced by the castling rules.
const (
	A8 Square = 0
	C8 Square = 2
	D8 Square = 3
	E8 Square = 4
	F8 Square = 5
	G8 Square = 6
	H8 Square = 7
	A1 Square = 56
	C1 Square = 58
	D1 Square = 59
	E1 Square = 60
	F1 Square = 61
	G1 Square = 62
	H1 Square = 63
)

// ToIndex converts a file (0=a) and row (0=rank 8) pair to a square.
// Out of range coordinates yield NoSquare.
func ToIndex(file, row int) Square {
	if file < 0 || file >= BoardSize || row < 0 || row >= BoardSize {
		return NoSquare
	}
	return Square(row*BoardSize + file)
}

// Coord returns the file (0=a) and row (0=rank 8) of s.
func (s Square) Coord() (file, row int) {
	return int(s) % BoardSize, int(s) / BoardSize
}

// File returns the file of s, 0 for a through 7 for h.
func (s Square) File() int {
	return int(s) % BoardSize
}

// Row returns the row of s counted from the top, 0 for rank 8.
func (s Square) Row() int {
	return int(s) / BoardSize
}

// Rank returns the chess rank of s, 1 through 8.
func (s Square) Rank() int {
	return BoardSize - s.Row()
}

// Valid reports whether s addresses a board cell.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Offset returns the square df files and dr rows away from s, or
// NoSquare if that falls off the board.
func (s Square) Offset(df, dr int) Square {
	f, r := s.Coord()
	return ToIndex(f+df, r+dr)
}

// String returns the algebraic name of s, or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(ColBase + s.File()), byte(RankBase + s.Rank() - 1)})
}

// ParseSquare converts an algebraic square such as "e4" to its index.
func ParseSquare(an string) (Square, error) {
	if len(an) != 2 {
		return NoSquare, fmt.Errorf("square %q: %w", an, errors.ErrInvalidNotation)
	}
	col, rank := an[0], an[1]
	if col < 'a' || col > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("square %q: %w", an, errors.ErrInvalidNotation)
	}
	return ToIndex(int(col-ColBase), BoardSize-1-int(rank-RankBase)), nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for constant squares in tests and tables.
func MustParseSquare(an string) Square {
	s, err := ParseSquare(an)
	if err != nil {
		panic(err)
	}
	return s
}
