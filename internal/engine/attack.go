package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Direction sets as (file, row) deltas.
var (
	knightOffsets  = [][2]int{{1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {2, 1}, {2, -1}, {-2, 1}, {-2, -1}}
	kingOffsets    = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	diagonalDirs   = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	straightDirs   = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	queenDirs      = append(append([][2]int{}, diagonalDirs...), straightDirs...)
	slidingDirsFor = map[chess.PieceType][][2]int{
		chess.Bishop: diagonalDirs,
		chess.Rook:   straightDirs,
		chess.Queen:  queenDirs,
	}
)

// IsAttacking reports whether the piece standing on from threatens to
// under the current occupancy, regardless of whose turn it is. It is the
// single source of truth for both piece movement and check detection.
//
// A king also "attacks" its castling targets when the matching right is
// held and the squares between king and rook are empty. Whether the king
// passes through or lands on an attacked square is left to move
// validation.
func IsAttacking(pos *chess.Position, from, to chess.Square) bool {
	piece := pos.At(from)
	if piece.IsEmpty() || from == to {
		return false
	}

	switch piece.Type {
	case chess.Pawn:
		return pawnAttacks(pos, piece.Colour, from, to)
	case chess.Knight:
		return offsetAttacks(pos, piece.Colour, from, to, knightOffsets)
	case chess.King:
		return offsetAttacks(pos, piece.Colour, from, to, kingOffsets) ||
			castlingAttacks(pos, piece.Colour, from, to)
	case chess.Bishop, chess.Rook, chess.Queen:
		return rayAttacks(pos, piece.Colour, from, to, slidingDirsFor[piece.Type])
	}
	return false
}

// pawnAttacks handles the one-step forward diagonal, which only counts
// when an enemy piece stands on the target.
func pawnAttacks(pos *chess.Position, colour chess.Colour, from, to chess.Square) bool {
	ff, fr := from.Coord()
	tf, tr := to.Coord()
	if tr-fr != colour.Forward() || abs(tf-ff) != 1 {
		return false
	}
	return pos.HasEnemy(to, colour)
}

// offsetAttacks handles fixed-offset pieces, blocked only by an ally on
// the target.
func offsetAttacks(pos *chess.Position, colour chess.Colour, from, to chess.Square, offsets [][2]int) bool {
	ff, fr := from.Coord()
	tf, tr := to.Coord()
	df, dr := tf-ff, tr-fr
	for _, o := range offsets {
		if o[0] == df && o[1] == dr {
			return !pos.HasAlly(to, colour)
		}
	}
	return false
}

// rayAttacks walks each direction until the edge or the first occupant.
// The occupant is a valid target only if it is an enemy.
func rayAttacks(pos *chess.Position, colour chess.Colour, from, to chess.Square, dirs [][2]int) bool {
	for _, dir := range dirs {
		for s := from.Offset(dir[0], dir[1]); s != chess.NoSquare; s = s.Offset(dir[0], dir[1]) {
			if s == to {
				return !pos.HasAlly(s, colour)
			}
			if !pos.IsEmpty(s) {
				break // Blocked
			}
		}
	}
	return false
}

// castlingAttacks treats a castling king move as an attack on the king's
// landing square.
func castlingAttacks(pos *chess.Position, colour chess.Colour, from, to chess.Square) bool {
	c, ok := chess.CastleByKingTarget(to)
	if !ok || c.Colour != colour || c.KingFrom != from {
		return false
	}
	if !pos.Castling[c.Right] {
		return false
	}
	return isPathClear(pos, c.KingFrom, c.RookFrom)
}

// isPathClear checks that every square strictly between from and to on
// the same row is empty.
func isPathClear(pos *chess.Position, from, to chess.Square) bool {
	step := sign(int(to) - int(from))
	for s := from + chess.Square(step); s != to; s += chess.Square(step) {
		if !pos.IsEmpty(s) {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
