package game

import (
	"errors"
	"testing"

	"github.com/park285/clickchess/internal/board"
)

func TestClickSelectThenMove(t *testing.T) {
	g := New(Options{})

	res := g.Click(board.Sq(4, 1))
	if res.Outcome != ClickSelected {
		t.Fatalf("first click: %s", res.Outcome)
	}
	if len(res.Destinations) != 2 {
		t.Fatalf("destinations: %v", res.Destinations)
	}
	sel := g.Selection()
	if from, ok := sel.From(); !ok || from != board.Sq(4, 1) {
		t.Fatalf("selection from: %v %v", from, ok)
	}
	if !sel.Contains(board.Sq(4, 3)) || sel.Contains(board.Sq(4, 4)) {
		t.Fatalf("selection destinations: %v", sel.Destinations())
	}

	res = g.Click(board.Sq(4, 3))
	if res.Outcome != ClickMoved || res.Move == nil {
		t.Fatalf("second click: %+v", res)
	}
	if g.Selection().Active() {
		t.Fatalf("selection should clear after a move")
	}
	if g.CurrentTurn() != board.Black {
		t.Fatalf("turn should pass to black")
	}
	if g.Board().At(board.Sq(4, 3)) != board.NewPiece(board.Pawn, board.White) {
		t.Fatalf("pawn not on e4")
	}
}

func TestClickIgnoredWithoutSelection(t *testing.T) {
	g := New(Options{})
	for _, sq := range []board.Square{board.Sq(4, 4), board.Sq(4, 6), board.Sq(-1, 3), board.Sq(0, 8)} {
		if res := g.Click(sq); res.Outcome != ClickIgnored {
			t.Fatalf("click %s: %s", sq, res.Outcome)
		}
		if g.Selection().Active() {
			t.Fatalf("click %s selected something", sq)
		}
	}
}

func TestClickRejectedClearsSelection(t *testing.T) {
	g := New(Options{})
	g.Click(board.Sq(4, 1))
	before := *g.Board()

	res := g.Click(board.Sq(4, 5))
	if res.Outcome != ClickRejected || !errors.Is(res.Err, board.ErrIllegalMove) {
		t.Fatalf("illegal target: %+v", res)
	}
	if g.Selection().Active() {
		t.Fatalf("selection must clear after a rejected target")
	}
	if *g.Board() != before || g.CurrentTurn() != board.White {
		t.Fatalf("rejected click changed state")
	}

	// Clicking another friendly piece while selected is also a rejected
	// target, not a reselection.
	g.Click(board.Sq(4, 1))
	if res := g.Click(board.Sq(3, 1)); res.Outcome != ClickRejected {
		t.Fatalf("friendly target: %s", res.Outcome)
	}
	if g.Selection().Active() {
		t.Fatalf("selection should be empty")
	}

	g.Click(board.Sq(4, 1))
	if res := g.Click(board.Sq(4, 9)); res.Outcome != ClickRejected || !errors.Is(res.Err, board.ErrOutOfBounds) {
		t.Fatalf("off-board target: %+v", res)
	}
}

func TestClickPieceWithoutMovesStillSelects(t *testing.T) {
	g := New(Options{})
	res := g.Click(board.Sq(4, 0))
	if res.Outcome != ClickSelected || len(res.Destinations) != 0 {
		t.Fatalf("king click: %+v", res)
	}
	if res := g.Click(board.Sq(4, 1)); res.Outcome != ClickRejected {
		t.Fatalf("king move: %s", res.Outcome)
	}
}

func TestRookPathScenario(t *testing.T) {
	g := New(Options{})
	if res := g.Click(board.Sq(0, 0)); res.Outcome != ClickSelected {
		t.Fatalf("select rook: %s", res.Outcome)
	}
	if res := g.Click(board.Sq(0, 5)); res.Outcome != ClickRejected {
		t.Fatalf("blocked rook: %s", res.Outcome)
	}

	// Walk the a-pawn up to a5 so the file behind it is open.
	steps := [][2]board.Square{
		{board.Sq(0, 1), board.Sq(0, 3)},
		{board.Sq(7, 6), board.Sq(7, 5)},
		{board.Sq(0, 3), board.Sq(0, 4)},
		{board.Sq(7, 5), board.Sq(7, 4)},
	}
	for _, s := range steps {
		g.Click(s[0])
		if res := g.Click(s[1]); res.Outcome != ClickMoved {
			t.Fatalf("%s-%s: %+v", s[0], s[1], res)
		}
	}
	if g.Board().At(board.Sq(0, 1)) != board.Empty {
		t.Fatalf("a2 should be empty")
	}
	if res := g.Click(board.Sq(0, 0)); res.Outcome != ClickSelected {
		t.Fatalf("reselect rook: %s", res.Outcome)
	}
	if !g.Selection().Contains(board.Sq(0, 3)) {
		t.Fatalf("rook should reach a4: %v", g.Selection().Destinations())
	}
	if res := g.Click(board.Sq(0, 3)); res.Outcome != ClickMoved {
		t.Fatalf("rook move: %+v", res)
	}
}

func TestRookPathScenarioDirect(t *testing.T) {
	g := New(Options{})
	if _, err := g.Move(board.Sq(0, 0), board.Sq(0, 5)); !errors.Is(err, board.ErrIllegalMove) {
		t.Fatalf("blocked rook: %v", err)
	}
	b := g.Board()
	_ = b.Set(board.Sq(0, 1), board.Empty)
	g = New(Options{Board: b})
	if _, err := g.Move(board.Sq(0, 0), board.Sq(0, 5)); err != nil {
		t.Fatalf("clear rook path: %v", err)
	}
}
