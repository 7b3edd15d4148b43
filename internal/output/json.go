package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// JSONPosition represents a position in JSON format.
type JSONPosition struct {
	FEN            string   `json:"fen"`
	ToMove         string   `json:"toMove"` // "white" or "black"
	Castling       string   `json:"castling"`
	EnPassant      string   `json:"enPassant,omitempty"`
	HalfmoveClock  int      `json:"halfmoveClock"`
	FullmoveNumber int      `json:"fullmoveNumber"`
	InCheck        bool     `json:"inCheck"`
	Checkers       []string `json:"checkers,omitempty"`
	Result         string   `json:"result"`
	Termination    string   `json:"termination,omitempty"`
	Rows           []string `json:"rows"`
	LegalMoves     []string `json:"legalMoves,omitempty"`
}

// JSONOutput holds multiple positions for array output.
type JSONOutput struct {
	Positions []*JSONPosition `json:"positions"`
}

// OutputPositionJSON outputs a single position in JSON format.
func OutputPositionJSON(b *engine.Board, cfg *config.Config) {
	enc := json.NewEncoder(cfg.OutputFile)
	enc.SetIndent("", "  ")
	enc.Encode(PositionToJSON(b, cfg)) //nolint:gosec // G104: error handled via writer
}

// OutputPositionsJSON outputs multiple positions as a JSON array.
func OutputPositionsJSON(boards []*engine.Board, cfg *config.Config, w io.Writer) {
	positions := make([]*JSONPosition, len(boards))
	for i, b := range boards {
		positions[i] = PositionToJSON(b, cfg)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(&JSONOutput{Positions: positions}) //nolint:gosec // G104: error handled via writer
}

// PositionToJSON converts a board to JSON format.
func PositionToJSON(b *engine.Board, cfg *config.Config) *JSONPosition {
	pos := b.Position()
	state, term := b.Outcome()

	jp := &JSONPosition{
		FEN:            b.FEN(),
		ToMove:         colourName(pos.ToMove),
		Castling:       pos.Castling.String(),
		HalfmoveClock:  pos.HalfmoveClock,
		FullmoveNumber: pos.FullmoveNumber,
		InCheck:        b.InCheck(),
		Result:         state.String(),
		Rows:           boardRows(&pos),
	}
	if checkers := b.Checkers(); len(checkers) > 0 {
		jp.Checkers = squareNames(checkers)
	}
	if pos.EnPassant != chess.NoSquare {
		jp.EnPassant = pos.EnPassant.String()
	}
	if term != chess.NoTermination {
		jp.Termination = term.String()
	}
	if cfg.Output.ShowLegalMoves {
		jp.LegalMoves = formatMoves(b.LegalMoves())
	}
	return jp
}

// colourName returns "white" or "black".
func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// boardRows returns eight strings of FEN letters, rank 8 first, with '.'
// for empty cells.
func boardRows(pos *chess.Position) []string {
	rows := make([]string, 8)
	for row := 0; row < 8; row++ {
		buf := make([]byte, 8)
		for file := 0; file < 8; file++ {
			p := pos.At(chess.ToIndex(file, row))
			if p.IsEmpty() {
				buf[file] = '.'
			} else {
				buf[file] = p.Letter()
			}
		}
		rows[row] = string(buf)
	}
	return rows
}
