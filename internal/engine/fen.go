// Package engine implements the chess rules: attack evaluation, move
// validation, make/unmake with a snapshot stack, check detection, legal
// move enumeration and game-state classification.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN creates a board from a FEN string.
func NewBoardFromFEN(fen string) (*Board, error) {
	pos, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewBoardFromPosition(pos), nil
}

// ParseFEN parses the six FEN fields into a position. Trailing fields
// may be omitted and default to "w - - 0 1".
func ParseFEN(fen string) (chess.Position, error) {
	pos := chess.NewPosition()
	parts := strings.Fields(fen)
	if len(parts) < 1 || len(parts) > 6 {
		return pos, &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "fields", Got: fen}
	}

	if err := parsePiecePositions(&pos, parts[0]); err != nil {
		return pos, err
	}
	if err := parseSideToMove(&pos, parts); err != nil {
		return pos, err
	}
	if err := parseCastlingRights(&pos, parts); err != nil {
		return pos, err
	}
	if err := parseEnPassant(&pos, parts); err != nil {
		return pos, err
	}
	if err := parseClocks(&pos, parts); err != nil {
		return pos, err
	}
	return pos, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(pos *chess.Position, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != chess.BoardSize {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "piece placement", Got: placement}
	}

	for row, text := range rows {
		file := 0
		for i := 0; i < len(text); i++ {
			c := text[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, err := chess.PieceFromLetter(c)
			if err != nil {
				return &errors.ParseError{Err: errors.ErrMalformedPiece, Field: "piece placement", Got: string(c)}
			}
			if file >= chess.BoardSize {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "piece placement", Got: text}
			}
			pos.Set(chess.ToIndex(file, row), piece)
			file++
		}
		if file != chess.BoardSize {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "piece placement", Got: text}
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "side to move", Got: parts[1]}
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *chess.Position, parts []string) error {
	pos.Castling = chess.CastlingRights{}
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			pos.Castling[chess.WhiteKingside] = true
		case 'Q':
			pos.Castling[chess.WhiteQueenside] = true
		case 'k':
			pos.Castling[chess.BlackKingside] = true
		case 'q':
			pos.Castling[chess.BlackQueenside] = true
		default:
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "castling", Got: parts[2]}
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, parts []string) error {
	pos.EnPassant = chess.NoSquare
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	s, err := chess.ParseSquare(parts[3])
	if err != nil {
		return &errors.ParseError{Err: fmt.Errorf("%w: %v", errors.ErrInvalidFEN, err), Field: "en passant", Got: parts[3]}
	}
	pos.EnPassant = s
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "halfmove clock", Got: parts[4]}
		}
		pos.HalfmoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "fullmove number", Got: parts[5]}
		}
		pos.FullmoveNumber = n
	}
	return nil
}

// FEN converts a position to a FEN string.
func FEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos)
	sb.WriteByte(' ')
	if pos.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())
	fmt.Fprintf(&sb, " %d %d", pos.HalfmoveClock, pos.FullmoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, pos *chess.Position) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.At(chess.ToIndex(file, row))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}
