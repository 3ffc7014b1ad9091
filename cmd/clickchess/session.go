package main

import (
	"encoding/json"
	"strings"

	"github.com/park285/clickchess/internal/adapter/chesspresenter"
	"github.com/park285/clickchess/internal/board"
	"github.com/park285/clickchess/internal/game"
	"github.com/park285/clickchess/internal/notation"
	"github.com/park285/clickchess/pkg/chessdto"
)

// session ties one game to the presenter and interprets command lines.
type session struct {
	game      *game.Game
	pieces    *chesspresenter.PieceSet
	presenter *chesspresenter.Presenter
	formatter *chesspresenter.Formatter
}

func newSession(g *game.Game, pieces *chesspresenter.PieceSet, presenter *chesspresenter.Presenter) *session {
	return &session{
		game:      g,
		pieces:    pieces,
		presenter: presenter,
		formatter: presenter.Formatter(),
	}
}

func (s *session) start() error {
	state := chesspresenter.ToDTOState(s.game, s.pieces)
	return s.presenter.Board(s.formatter.Start(state), state)
}

// handle runs one command line. It reports false once the player quits.
func (s *session) handle(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit", "q":
		return false, nil
	case "help", "?":
		return true, s.presenter.Message(s.formatter.Help())
	case "click", "c":
		if len(args) != 1 {
			return true, s.presenter.Message(s.formatter.Usage("click <square>"))
		}
		return true, s.click(args[0])
	case "move", "m":
		if len(args) != 2 {
			return true, s.presenter.Message(s.formatter.Usage("move <from> <to>"))
		}
		return true, s.move(args[0], args[1])
	case "moves":
		if len(args) != 1 {
			return true, s.presenter.Message(s.formatter.Usage("moves <square>"))
		}
		return true, s.moves(args[0])
	case "board", "b":
		return true, s.presenter.Board("", s.state())
	case "score":
		return true, s.presenter.Message(s.formatter.Scores(s.state()))
	case "fen":
		return true, s.presenter.Message(s.state().FEN)
	case "state":
		raw, err := json.MarshalIndent(s.state(), "", "  ")
		if err != nil {
			return true, err
		}
		return true, s.presenter.Message(string(raw))
	case "history":
		return true, s.presenter.Message(s.formatter.History(chesspresenter.ToDTOHistory(s.game.History())))
	case "reset":
		s.game.Reset()
		state := s.state()
		return true, s.presenter.Board(s.formatter.Reset(state), state)
	default:
		return true, s.presenter.Message(s.formatter.Unknown(cmd))
	}
}

func (s *session) state() *chessdto.SessionState {
	return chesspresenter.ToDTOState(s.game, s.pieces)
}

func (s *session) click(arg string) error {
	sq, err := notation.ParseSquare(arg)
	if err != nil {
		return s.presenter.Message(s.formatter.BadSquare(arg))
	}
	piece := s.game.Board().At(sq)
	res := s.game.Click(sq)
	msg := s.formatter.Click(chesspresenter.ToDTOClick(res, piece))
	if res.Outcome == game.ClickIgnored {
		return s.presenter.Message(msg)
	}
	return s.presenter.Board(msg, s.state())
}

func (s *session) move(fromArg, toArg string) error {
	from, err := notation.ParseSquare(fromArg)
	if err != nil {
		return s.presenter.Message(s.formatter.BadSquare(fromArg))
	}
	to, err := notation.ParseSquare(toArg)
	if err != nil {
		return s.presenter.Message(s.formatter.BadSquare(toArg))
	}
	rec, err := s.game.Move(from, to)
	if err != nil {
		return s.presenter.Message(s.formatter.Error(chesspresenter.ToDomainError(err)))
	}
	entry := chesspresenter.ToDTOMove(rec)
	return s.presenter.Board(s.formatter.Move(&entry), s.state())
}

func (s *session) moves(arg string) error {
	sq, err := notation.ParseSquare(arg)
	if err != nil {
		return s.presenter.Message(s.formatter.BadSquare(arg))
	}
	b := s.game.Board()
	piece := b.At(sq)
	if piece.IsEmpty() {
		return s.presenter.Message(s.formatter.Error(chesspresenter.ToDomainError(board.ErrNoPieceAtSource)))
	}
	dests := s.game.LegalDestinations(sq)
	names := make([]string, 0, len(dests))
	for _, d := range dests {
		names = append(names, d.String())
	}
	return s.presenter.Message(s.formatter.Destinations(piece.String(), sq.String(), names))
}
