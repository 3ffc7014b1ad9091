package game

import "github.com/park285/clickchess/internal/board"

// ClickOutcome is what a single square click did.
type ClickOutcome int

const (
	// ClickIgnored: nothing was selected and the click did not pick up a
	// piece of the side to move.
	ClickIgnored ClickOutcome = iota
	ClickSelected
	ClickMoved
	// ClickRejected: a piece was selected and the target was not legal.
	// The selection is gone.
	ClickRejected
)

func (o ClickOutcome) String() string {
	switch o {
	case ClickSelected:
		return "selected"
	case ClickMoved:
		return "moved"
	case ClickRejected:
		return "rejected"
	default:
		return "ignored"
	}
}

type ClickResult struct {
	Outcome      ClickOutcome
	Square       board.Square
	Destinations []board.Square
	Move         *MoveRecord
	Err          error
}

// Click feeds one board click into the selection state machine. With
// nothing selected, clicking a piece of the side to move selects it and
// computes its destinations. With a piece selected, the click is the
// target: a legal target plays the move, anything else is rejected, and
// in both cases the selection is cleared.
func (g *Game) Click(sq board.Square) ClickResult {
	if !g.selection.Active() {
		p := g.board.At(sq)
		if !sq.InBounds() || p.IsEmpty() || p.Color != g.turns.Current() {
			return ClickResult{Outcome: ClickIgnored, Square: sq}
		}
		g.selection.set(sq, g.rules.LegalDestinations(g.board, sq))
		return ClickResult{Outcome: ClickSelected, Square: sq, Destinations: g.selection.Destinations()}
	}

	from := g.selection.from
	g.selection.clear()
	rec, err := g.Move(from, sq)
	if err != nil {
		return ClickResult{Outcome: ClickRejected, Square: sq, Err: err}
	}
	return ClickResult{Outcome: ClickMoved, Square: sq, Move: &rec}
}
