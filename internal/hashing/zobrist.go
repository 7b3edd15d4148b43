package hashing

import "github.com/lgbarn/chessrules-go/internal/chess"

// Zobrist keys, generated once from a fixed seed so hashes are stable
// across runs.
var (
	zobristPiece     [2][7][chess.NumSquares]uint64 // [Colour][PieceType][Square]
	zobristCastling  [16]uint64                     // one per combination of the four rights
	zobristEnPassant [chess.BoardSize]uint64        // one per file
	zobristBlack     uint64                         // XOR when Black is to move
)

func init() {
	rng := prng{state: 0x98F107A2BEEF1234}

	for c := chess.Black; c <= chess.White; c++ {
		for pt := chess.Pawn; pt <= chess.King; pt++ {
			for s := 0; s < chess.NumSquares; s++ {
				zobristPiece[c][pt][s] = rng.next()
			}
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rng.next()
	}
	zobristBlack = rng.next()
}

// prng is an xorshift64* generator.
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// GenerateZobristHash returns the Zobrist hash of pos. The clocks do not
// contribute; two positions that differ only in move counters hash alike.
func GenerateZobristHash(pos *chess.Position) uint64 {
	var hash uint64
	for s := chess.Square(0); s < chess.NumSquares; s++ {
		p := pos.At(s)
		if p.IsEmpty() {
			continue
		}
		hash ^= zobristPiece[p.Colour][p.Type][s]
	}
	if pos.ToMove == chess.Black {
		hash ^= zobristBlack
	}
	hash ^= zobristCastling[castlingIndex(pos.Castling)]
	if pos.EnPassant != chess.NoSquare {
		hash ^= zobristEnPassant[pos.EnPassant.File()]
	}
	return hash
}

func castlingIndex(cr chess.CastlingRights) int {
	idx := 0
	for i, held := range cr {
		if held {
			idx |= 1 << i
		}
	}
	return idx
}

// WeakHash is a cheap secondary checksum over the piece placement, used
// to reject Zobrist collisions.
func WeakHash(pos *chess.Position) uint32 {
	var sum uint32
	for s := chess.Square(0); s < chess.NumSquares; s++ {
		p := pos.At(s)
		if p.IsEmpty() {
			continue
		}
		sum = sum*31 + uint32(s)<<4 + uint32(p.Type)<<1 + uint32(p.Colour)
	}
	return sum
}
