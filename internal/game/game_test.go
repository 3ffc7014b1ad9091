package game

import (
	"errors"
	"testing"

	"github.com/park285/clickchess/internal/board"
)

func TestNewGameDefaults(t *testing.T) {
	g := New(Options{})
	if g.ID() == "" {
		t.Fatalf("expected a game id")
	}
	if g.CurrentTurn() != board.White {
		t.Fatalf("white must move first, got %s", g.CurrentTurn())
	}
	if g.Player(board.White).Name != DefaultWhiteName || g.Player(board.Black).Name != DefaultBlackName {
		t.Fatalf("unexpected names: %q %q", g.Player(board.White).Name, g.Player(board.Black).Name)
	}
	if g.Rules().Name() != board.RulesPartial {
		t.Fatalf("default rules: %s", g.Rules().Name())
	}
	if g.ScoreOf(board.White) != 0 || g.ScoreOf(board.Black) != 0 {
		t.Fatalf("scores should start at zero")
	}
	if other := New(Options{}); other.ID() == g.ID() {
		t.Fatalf("game ids must differ")
	}
}

func TestPawnOpeningThenIllegalReply(t *testing.T) {
	g := New(Options{})
	if _, err := g.Move(board.Sq(4, 1), board.Sq(4, 3)); err != nil {
		t.Fatalf("e2-e4: %v", err)
	}
	if g.CurrentTurn() != board.Black {
		t.Fatalf("turn should be black after white moves")
	}

	before := *g.Board()
	_, err := g.Move(board.Sq(4, 6), board.Sq(4, 3))
	if !errors.Is(err, board.ErrIllegalMove) {
		t.Fatalf("e7-e4: expected ErrIllegalMove, got %v", err)
	}
	if *g.Board() != before {
		t.Fatalf("rejected move changed the board")
	}
	if g.CurrentTurn() != board.Black {
		t.Fatalf("rejected move must not flip the turn")
	}
	if g.Ply() != 1 {
		t.Fatalf("history length: %d", g.Ply())
	}
}

func TestMoveErrors(t *testing.T) {
	g := New(Options{})
	cases := []struct {
		from, to board.Square
		want     error
	}{
		{board.Sq(4, 1), board.Sq(4, 9), board.ErrOutOfBounds},
		{board.Sq(8, 0), board.Sq(0, 0), board.ErrOutOfBounds},
		{board.Sq(4, 4), board.Sq(4, 5), board.ErrNoPieceAtSource},
		{board.Sq(4, 6), board.Sq(4, 5), ErrNotYourTurn},
		{board.Sq(1, 0), board.Sq(2, 2), board.ErrIllegalMove},
	}
	for _, c := range cases {
		if _, err := g.Move(c.from, c.to); !errors.Is(err, c.want) {
			t.Fatalf("Move(%s,%s): got %v want %v", c.from, c.to, err, c.want)
		}
	}
	if g.CurrentTurn() != board.White || g.Ply() != 0 {
		t.Fatalf("failed moves must leave the game untouched")
	}
}

func TestCaptureScoresOnePoint(t *testing.T) {
	b := &board.Board{}
	_ = b.Set(board.Sq(0, 0), board.NewPiece(board.Rook, board.White))
	_ = b.Set(board.Sq(0, 6), board.NewPiece(board.Queen, board.Black))
	_ = b.Set(board.Sq(7, 6), board.NewPiece(board.Pawn, board.Black))
	g := New(Options{Board: b})

	rec, err := g.Move(board.Sq(0, 0), board.Sq(0, 6))
	if err != nil {
		t.Fatalf("Rxa7: %v", err)
	}
	if !rec.IsCapture() || rec.Captured != board.NewPiece(board.Queen, board.Black) {
		t.Fatalf("record: %+v", rec)
	}
	if g.ScoreOf(board.White) != 1 || g.ScoreOf(board.Black) != 0 {
		t.Fatalf("scores: white=%d black=%d", g.ScoreOf(board.White), g.ScoreOf(board.Black))
	}
	if n := g.Board().Count(); n != 2 {
		t.Fatalf("piece count after capture: %d", n)
	}

	// Quiet move does not score.
	if _, err := g.Move(board.Sq(7, 6), board.Sq(7, 5)); err != nil {
		t.Fatalf("h7-h6: %v", err)
	}
	if g.ScoreOf(board.Black) != 0 {
		t.Fatalf("quiet move scored")
	}
}

func TestExecuteDoesNotValidate(t *testing.T) {
	b := board.NewStandard()
	white := NewPlayer("w", board.White)
	before := b.Count()

	// A king jumping across the board is not legal, but Execute only moves.
	captured, ok, err := Execute(b, board.Sq(4, 0), board.Sq(4, 6), white)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !ok || captured != board.NewPiece(board.Pawn, board.Black) {
		t.Fatalf("expected pawn capture, got %v %v", captured, ok)
	}
	if white.Score() != CaptureReward {
		t.Fatalf("score: %d", white.Score())
	}
	if b.At(board.Sq(4, 0)) != board.Empty || b.At(board.Sq(4, 6)) != board.NewPiece(board.King, board.White) {
		t.Fatalf("relocation failed")
	}
	if b.Count() != before-1 {
		t.Fatalf("count: %d", b.Count())
	}

	// Landing on a friendly piece replaces it without scoring.
	_, ok, err = Execute(b, board.Sq(0, 0), board.Sq(0, 1), white)
	if err != nil || ok {
		t.Fatalf("friendly landing: ok=%v err=%v", ok, err)
	}
	if white.Score() != CaptureReward {
		t.Fatalf("friendly landing scored")
	}

	if _, _, err := Execute(b, board.Sq(0, 0), board.Sq(-1, 0), white); !errors.Is(err, board.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestPieceCountNeverIncreases(t *testing.T) {
	g := New(Options{})
	moves := [][2]board.Square{
		{board.Sq(4, 1), board.Sq(4, 3)},
		{board.Sq(3, 6), board.Sq(3, 4)},
		{board.Sq(4, 3), board.Sq(3, 4)},
		{board.Sq(2, 7), board.Sq(6, 3)},
		{board.Sq(5, 0), board.Sq(1, 4)},
		{board.Sq(6, 3), board.Sq(3, 0)},
	}
	prev := g.Board().Count()
	for i, m := range moves {
		if _, err := g.Move(m[0], m[1]); err != nil {
			t.Fatalf("move %d %s-%s: %v", i, m[0], m[1], err)
		}
		n := g.Board().Count()
		if n > prev {
			t.Fatalf("move %d increased piece count %d -> %d", i, prev, n)
		}
		prev = n
	}
	if prev != 30 {
		t.Fatalf("expected two captures, count=%d", prev)
	}
	if g.ScoreOf(board.White) != 1 || g.ScoreOf(board.Black) != 1 {
		t.Fatalf("scores: white=%d black=%d", g.ScoreOf(board.White), g.ScoreOf(board.Black))
	}
}

func TestTurnManager(t *testing.T) {
	tm := NewTurnManager()
	if tm.Current() != board.White {
		t.Fatalf("initial turn: %s", tm.Current())
	}
	if tm.Advance() != board.Black || tm.Current() != board.Black {
		t.Fatalf("advance to black failed")
	}
	if tm.Advance() != board.White {
		t.Fatalf("advance back to white failed")
	}
	var zero TurnManager
	if zero.Current() != board.White {
		t.Fatalf("zero value should report white")
	}
}

func TestAdvanceTurnAndReset(t *testing.T) {
	g := New(Options{WhiteName: "Alice", BlackName: "Bob", Rules: board.Standard()})
	g.Click(board.Sq(4, 1))
	if g.AdvanceTurn() != board.Black {
		t.Fatalf("advance should pass to black")
	}
	if g.Selection().Active() {
		t.Fatalf("advancing must drop the selection")
	}
	if _, err := g.Move(board.Sq(4, 6), board.Sq(4, 4)); err != nil {
		t.Fatalf("e7-e5: %v", err)
	}

	id := g.ID()
	g.Reset()
	if g.ID() == id {
		t.Fatalf("reset should issue a new id")
	}
	if g.CurrentTurn() != board.White || g.Ply() != 0 {
		t.Fatalf("reset state: turn=%s ply=%d", g.CurrentTurn(), g.Ply())
	}
	if g.Player(board.White).Name != "Alice" || g.Rules().Name() != board.RulesStandard {
		t.Fatalf("reset lost names or rules")
	}
	if *g.Board() != *board.NewStandard() {
		t.Fatalf("reset should restore the starting layout")
	}
}

func TestPlayerScoreNeverDecreases(t *testing.T) {
	p := NewPlayer("p", board.White)
	p.AddScore(2)
	p.AddScore(-5)
	p.AddScore(0)
	if p.Score() != 2 {
		t.Fatalf("score: %d", p.Score())
	}
	var nilPlayer *Player
	nilPlayer.AddScore(1)
	if nilPlayer.Score() != 0 {
		t.Fatalf("nil player score")
	}
}
