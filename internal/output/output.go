// Package output renders positions as text diagrams or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

var glyphs = map[chess.Piece]string{
	chess.W(chess.King): "♔", chess.W(chess.Queen): "♕", chess.W(chess.Rook): "♖",
	chess.W(chess.Bishop): "♗", chess.W(chess.Knight): "♘", chess.W(chess.Pawn): "♙",
	chess.B(chess.King): "♚", chess.B(chess.Queen): "♛", chess.B(chess.Rook): "♜",
	chess.B(chess.Bishop): "♝", chess.B(chess.Knight): "♞", chess.B(chess.Pawn): "♟",
}

// pieceSymbol returns the character drawn for a cell.
func pieceSymbol(p chess.Piece, unicode bool) string {
	if p.IsEmpty() {
		return "."
	}
	if unicode {
		return glyphs[p]
	}
	return string(p.Letter())
}

// OutputBoard draws the board, a status line and, if configured, the
// legal moves to cfg.OutputFile.
func OutputBoard(b *engine.Board, cfg *config.Config) {
	w := cfg.OutputFile

	fmt.Fprint(w, RenderBoard(b, cfg.Output))
	fmt.Fprintln(w, StatusLine(b))

	if cfg.Output.ShowLegalMoves {
		WriteMoves(w, b.LegalMoves(), cfg.Output.MaxLineLength)
	}
}

// RenderBoard returns the diagram of b with rank 8 at the top.
func RenderBoard(b *engine.Board, opts config.OutputConfig) string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		if opts.ShowCoordinates {
			fmt.Fprintf(&sb, "%d ", 8-row)
		}
		for file := 0; file < 8; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(pieceSymbol(b.At(chess.ToIndex(file, row)), opts.Unicode))
		}
		sb.WriteByte('\n')
	}
	if opts.ShowCoordinates {
		sb.WriteString("  a b c d e f g h\n")
	}
	return sb.String()
}

// StatusLine describes the side to move, check, and a finished game's
// result, e.g. "Black to move, check from e1" or "1-0 (checkmate)".
func StatusLine(b *engine.Board) string {
	state, term := b.Outcome()
	if state != chess.Ongoing {
		return fmt.Sprintf("%s (%s)", state, term)
	}
	line := b.ToMove().String() + " to move"
	if checkers := b.Checkers(); len(checkers) > 0 {
		line += ", check from " + strings.Join(squareNames(checkers), " and ")
	}
	return line
}

func squareNames(squares []chess.Square) []string {
	names := make([]string, len(squares))
	for i, s := range squares {
		names[i] = s.String()
	}
	return names
}

// WriteMoves writes a counted move list wrapped at maxLineLength.
func WriteMoves(w io.Writer, moves []chess.Move, maxLineLength uint) {
	ow := NewOutputWriter(w, int(maxLineLength))
	ow.Write(fmt.Sprintf("Legal moves (%d):", len(moves)))
	for _, m := range moves {
		ow.Write(m.String())
	}
	ow.NewLine()
}

// formatMoves returns the moves in long algebraic form.
func formatMoves(moves []chess.Move) []string {
	result := make([]string, len(moves))
	for i, m := range moves {
		result[i] = m.String()
	}
	return result
}
