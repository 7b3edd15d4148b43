package perft

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	notnil "github.com/notnil/chess"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Mismatch is one root move on which two move generators disagree. A
// count of -1 means the generator did not produce the move at all.
type Mismatch struct {
	Move   string
	Ours   int64
	Theirs int64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: ours %d, theirs %d", m.Move, m.Ours, m.Theirs)
}

// CrossCheckDivide compares our perft divide at depth against the one
// computed by dragontoothmg and returns every disagreeing root move,
// sorted by move text.
func CrossCheckDivide(fen string, depth int) ([]Mismatch, error) {
	if depth < 1 {
		return nil, fmt.Errorf("depth %d: must be at least 1", depth)
	}
	b, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}

	ours := make(map[string]uint64)
	for _, r := range Divide(b, depth) {
		ours[r.Move.String()] = r.Nodes
	}

	board := dragontoothmg.ParseFen(fen)
	theirs := make(map[string]uint64)
	for _, m := range board.GenerateLegalMoves() {
		unapply := board.Apply(m)
		theirs[m.String()] = dragontoothPerft(&board, depth-1)
		unapply()
	}

	return compareCounts(ours, theirs), nil
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var n uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		n += dragontoothPerft(b, depth-1)
		unapply()
	}
	return n
}

func compareCounts(ours, theirs map[string]uint64) []Mismatch {
	keys := maps.Keys(ours)
	for _, k := range maps.Keys(theirs) {
		if !slices.Contains(keys, k) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	var out []Mismatch
	for _, k := range keys {
		o, inOurs := ours[k]
		t, inTheirs := theirs[k]
		if inOurs && inTheirs && o == t {
			continue
		}
		m := Mismatch{Move: k, Ours: -1, Theirs: -1}
		if inOurs {
			m.Ours = int64(o)
		}
		if inTheirs {
			m.Theirs = int64(t)
		}
		out = append(out, m)
	}
	return out
}

// PositionReport compares one position's legal moves and terminal
// status against notnil/chess.
type PositionReport struct {
	FEN string

	// Moves only one side generated, in long algebraic form.
	OnlyOurs   []string
	OnlyTheirs []string

	// Terminal status: "checkmate", "stalemate" or "none".
	OurStatus   string
	TheirStatus string
}

// Agree reports whether both libraries produced the same moves and status.
func (r *PositionReport) Agree() bool {
	return len(r.OnlyOurs) == 0 && len(r.OnlyTheirs) == 0 && r.OurStatus == r.TheirStatus
}

func (r *PositionReport) String() string {
	if r.Agree() {
		return r.FEN + ": ok"
	}
	var sb strings.Builder
	sb.WriteString(r.FEN)
	if len(r.OnlyOurs) > 0 {
		fmt.Fprintf(&sb, "\n  only ours: %s", strings.Join(r.OnlyOurs, " "))
	}
	if len(r.OnlyTheirs) > 0 {
		fmt.Fprintf(&sb, "\n  only theirs: %s", strings.Join(r.OnlyTheirs, " "))
	}
	if r.OurStatus != r.TheirStatus {
		fmt.Fprintf(&sb, "\n  status: ours %s, theirs %s", r.OurStatus, r.TheirStatus)
	}
	return sb.String()
}

// CrossCheckPosition compares the legal move set and the checkmate or
// stalemate status of fen with notnil/chess. The fifty-move rule is not
// compared; notnil/chess only applies it on claim.
func CrossCheckPosition(fen string) (*PositionReport, error) {
	b, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	opt, err := notnil.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("notnil/chess: %w", err)
	}
	game := notnil.NewGame(opt)

	ours := make([]string, 0, 64)
	for _, m := range b.LegalMoves() {
		ours = append(ours, m.String())
	}
	theirs := make([]string, 0, 64)
	for _, m := range game.ValidMoves() {
		theirs = append(theirs, m.String())
	}

	report := &PositionReport{
		FEN:         fen,
		OnlyOurs:    difference(ours, theirs),
		OnlyTheirs:  difference(theirs, ours),
		OurStatus:   ourStatus(b),
		TheirStatus: theirStatus(game.Position().Status()),
	}
	return report, nil
}

func difference(a, b []string) []string {
	var out []string
	for _, s := range a {
		if !slices.Contains(b, s) {
			out = append(out, s)
		}
	}
	slices.Sort(out)
	return out
}

func ourStatus(b *engine.Board) string {
	switch {
	case b.IsCheckmate():
		return chess.Checkmate.String()
	case b.IsStalemate():
		return chess.Stalemate.String()
	}
	return chess.NoTermination.String()
}

func theirStatus(m notnil.Method) string {
	switch m {
	case notnil.Checkmate:
		return chess.Checkmate.String()
	case notnil.Stalemate:
		return chess.Stalemate.String()
	}
	return chess.NoTermination.String()
}
