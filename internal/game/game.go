package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/park285/clickchess/internal/board"
	"github.com/park285/clickchess/internal/obslog"
)

var ErrNotYourTurn = errors.New("not your turn")

const (
	DefaultWhiteName = "Player 1"
	DefaultBlackName = "Player 2"
)

// Options configures a new Game. Zero values fall back to the standard
// layout, partial rules, White to move and the default player names.
type Options struct {
	WhiteName string
	BlackName string
	Rules     *board.Ruleset
	Board     *board.Board
	Turn      board.Color
}

// MoveRecord describes one completed move.
type MoveRecord struct {
	Ply      int
	Color    board.Color
	Player   string
	From     board.Square
	To       board.Square
	Piece    board.Piece
	Captured board.Piece
}

func (m MoveRecord) IsCapture() bool { return !m.Captured.IsEmpty() }

// Game holds one hot-seat match: the board, both players, whose turn it
// is and the pending selection. It is not safe for concurrent use.
type Game struct {
	id        string
	rules     *board.Ruleset
	board     *board.Board
	turns     *TurnManager
	white     *Player
	black     *Player
	selection Selection
	history   []MoveRecord
}

func New(opts Options) *Game {
	g := &Game{
		id:    uuid.NewString(),
		rules: opts.Rules,
		white: NewPlayer(nameOr(opts.WhiteName, DefaultWhiteName), board.White),
		black: NewPlayer(nameOr(opts.BlackName, DefaultBlackName), board.Black),
		turns: NewTurnManager(),
	}
	if g.rules == nil {
		g.rules = board.Partial()
	}
	if opts.Board != nil {
		g.board = opts.Board.Clone()
	} else {
		g.board = board.NewStandard()
	}
	if opts.Turn == board.Black {
		g.turns.Advance()
	}
	obslog.L().Info("game_start",
		zap.String("game_id", g.id),
		zap.String("rules", g.rules.Name()),
		zap.String("white", g.white.Name),
		zap.String("black", g.black.Name),
	)
	return g
}

func nameOr(name, def string) string {
	if v := strings.TrimSpace(name); v != "" {
		return v
	}
	return def
}

func (g *Game) ID() string { return g.id }
func (g *Game) Rules() *board.Ruleset { return g.rules }
func (g *Game) Selection() Selection { return g.selection }
func (g *Game) CurrentTurn() board.Color { return g.turns.Current() }
func (g *Game) CurrentPlayer() *Player { return g.Player(g.turns.Current()) }
func (g *Game) Ply() int { return len(g.history) }

// Board returns a copy of the position.
func (g *Game) Board() *board.Board { return g.board.Clone() }

// AdvanceTurn passes the move without playing one. Any selection is dropped.
func (g *Game) AdvanceTurn() board.Color {
	g.selection.clear()
	return g.turns.Advance()
}

func (g *Game) Player(c board.Color) *Player {
	switch c {
	case board.White:
		return g.white
	case board.Black:
		return g.black
	default:
		return nil
	}
}

func (g *Game) ScoreOf(c board.Color) int { return g.Player(c).Score() }

func (g *Game) History() []MoveRecord {
	return append([]MoveRecord(nil), g.history...)
}

// LegalDestinations lists where the piece on sq may move.
func (g *Game) LegalDestinations(sq board.Square) []board.Square {
	return g.rules.LegalDestinations(g.board, sq)
}

// Move plays from->to for the side to move. On error nothing changes.
func (g *Game) Move(from, to board.Square) (MoveRecord, error) {
	if err := g.check(from, to); err != nil {
		obslog.L().Debug("game_move_rejected",
			zap.String("game_id", g.id),
			zap.String("from", from.String()),
			zap.String("to", to.String()),
			zap.Error(err),
		)
		return MoveRecord{}, err
	}

	mover := g.CurrentPlayer()
	piece := g.board.At(from)
	captured, _, err := Execute(g.board, from, to, mover)
	if err != nil {
		return MoveRecord{}, err
	}

	rec := MoveRecord{
		Ply:      len(g.history) + 1,
		Color:    mover.Color,
		Player:   mover.Name,
		From:     from,
		To:       to,
		Piece:    piece,
		Captured: captured,
	}
	g.history = append(g.history, rec)
	g.selection.clear()
	next := g.turns.Advance()

	obslog.L().Info("game_move",
		zap.String("game_id", g.id),
		zap.Int("ply", rec.Ply),
		zap.String("player", rec.Player),
		zap.String("move", from.String()+to.String()),
		zap.Bool("capture", rec.IsCapture()),
		zap.String("next", next.String()),
	)
	return rec, nil
}

func (g *Game) check(from, to board.Square) error {
	if !from.InBounds() || !to.InBounds() {
		return fmt.Errorf("%s-%s: %w", from, to, board.ErrOutOfBounds)
	}
	p := g.board.At(from)
	if p.IsEmpty() {
		return fmt.Errorf("%s: %w", from, board.ErrNoPieceAtSource)
	}
	if p.Color != g.turns.Current() {
		return fmt.Errorf("%s belongs to %s: %w", from, p.Color, ErrNotYourTurn)
	}
	return g.rules.Validate(g.board, from, to)
}

// Reset starts over from the standard layout under a fresh id. Player
// names and rules are kept, scores are not.
func (g *Game) Reset() {
	*g = *New(Options{
		WhiteName: g.white.Name,
		BlackName: g.black.Name,
		Rules:     g.rules,
	})
}
