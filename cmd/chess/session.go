package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
)

const prompt = "--> "

const commandHelp = `  e2e4, e2 e4  make a move (append n, b, r or q to choose a promotion)
  undo         take back the last move
  moves        list the legal moves
  fen [FEN]    print the position, or load a new one
  new          restart from the starting position
  help         show this list
  quit         leave
`

// session runs one game at the prompt.
type session struct {
	cfg    *config.Config
	board  *engine.Board
	writer output.PositionWriter
	out    io.Writer
	log    *log.Logger
}

func newSession(cfg *config.Config, logger *log.Logger) (*session, error) {
	board, err := engine.NewBoardFromFEN(cfg.StartFEN)
	if err != nil {
		return nil, err
	}
	return &session{
		cfg:    cfg,
		board:  board,
		writer: output.NewPositionWriter(cfg.OutputFile, cfg),
		out:    cfg.OutputFile,
		log:    logger,
	}, nil
}

// run reads commands from r until the game ends, the player quits, or
// input runs out.
func (s *session) run(r io.Reader) error {
	defer s.writer.Close()

	if err := s.show(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(r)
	for s.board.WinState() == chess.Ongoing {
		fmt.Fprint(s.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		line := scanner.Text()
		quit, err := s.handle(line)
		if err != nil {
			s.log.Printf("rejected %q: %v", strings.TrimSpace(line), err)
			fmt.Fprintln(s.out, err)
			continue
		}
		if quit {
			return nil
		}
	}

	state, term := s.board.Outcome()
	fmt.Fprintln(s.out, resultMessage(state, term))
	return nil
}

// handle executes one line of input. The error is meant for the player.
func (s *session) handle(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprint(s.out, commandHelp)
		return false, nil
	case "undo":
		if err := s.board.UndoLastMove(); err != nil {
			return false, err
		}
		return false, s.show()
	case "moves":
		output.WriteMoves(s.out, s.board.LegalMoves(), s.cfg.Output.MaxLineLength)
		return false, nil
	case "fen":
		if len(fields) == 1 {
			fmt.Fprintln(s.out, s.board.FEN())
			return false, nil
		}
		return false, s.load(strings.Join(fields[1:], " "))
	case "new":
		return false, s.load(s.cfg.StartFEN)
	}

	m, err := chess.ParseMove(line)
	if err != nil {
		return false, errors.Wrap(err, "move format should be 'start end', e.g. 'e2 e4'")
	}
	if _, err := s.board.ApplyMove(m); err != nil {
		return false, err
	}
	s.log.Printf("ply %d: %s", s.board.Depth(), m)
	return false, s.show()
}

// load replaces the game with the position described by fen.
func (s *session) load(fen string) error {
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return err
	}
	s.board.Load(pos)
	return s.show()
}

func (s *session) show() error {
	if err := s.writer.WritePosition(s.board); err != nil {
		return err
	}
	return s.writer.Flush()
}

// resultMessage announces a finished game, e.g. "White won by checkmate".
func resultMessage(state chess.WinState, term chess.Termination) string {
	switch state {
	case chess.WhiteWins:
		return "White won by " + term.String()
	case chess.BlackWins:
		return "Black won by " + term.String()
	case chess.Draw:
		return "Draw by " + term.String()
	}
	return "Game abandoned"
}
