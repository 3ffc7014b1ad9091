package board

// pattern decides whether a piece could travel from one square to another
// on the given board, ignoring whose turn it is and king safety.
type pattern interface {
	reaches(b *Board, from, to Square, mover Piece) bool
}

type direction struct{ dx, dy int }

var (
	orthogonal = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonal   = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	allAround  = append(append([]direction{}, orthogonal...), diagonal...)
	knightHops = []direction{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
)

// landable reports whether mover may finish on to: empty or an enemy piece.
func landable(b *Board, to Square, mover Piece) bool {
	target := b.At(to)
	return target.IsEmpty() || target.Color != mover.Color
}

// pawnPattern: one step forward onto empty, two from the home row across
// empty squares, or one diagonal step onto an enemy piece.
type pawnPattern struct{}

func (pawnPattern) reaches(b *Board, from, to Square, mover Piece) bool {
	dir := mover.Color.forward()
	dx, dy := to.X-from.X, to.Y-from.Y
	target := b.At(to)

	switch {
	case dx == 0 && dy == dir:
		return target.IsEmpty()
	case dx == 0 && dy == 2*dir:
		if from.Y != mover.Color.pawnRow() {
			return false
		}
		return b.At(Sq(from.X, from.Y+dir)).IsEmpty() && target.IsEmpty()
	case (dx == 1 || dx == -1) && dy == dir:
		return mover.Opposes(target)
	}
	return false
}

// slidePattern moves any distance along one of its directions until
// something is in the way.
type slidePattern struct {
	dirs []direction
}

func (p slidePattern) reaches(b *Board, from, to Square, mover Piece) bool {
	dx, dy := to.X-from.X, to.Y-from.Y
	if dx == 0 && dy == 0 {
		return false
	}
	step, ok := p.stepToward(dx, dy)
	if !ok {
		return false
	}
	for cur := Sq(from.X+step.dx, from.Y+step.dy); cur != to; cur = Sq(cur.X+step.dx, cur.Y+step.dy) {
		if !b.At(cur).IsEmpty() {
			return false
		}
	}
	return landable(b, to, mover)
}

// stepToward returns the unit direction leading along (dx, dy), if that line
// is one this pattern may slide on.
func (p slidePattern) stepToward(dx, dy int) (direction, bool) {
	if dx != 0 && dy != 0 && abs(dx) != abs(dy) {
		return direction{}, false
	}
	step := direction{sign(dx), sign(dy)}
	for _, d := range p.dirs {
		if d == step {
			return step, true
		}
	}
	return direction{}, false
}

// stepPattern jumps to any of a fixed set of offsets.
type stepPattern struct {
	offsets []direction
}

func (p stepPattern) reaches(b *Board, from, to Square, mover Piece) bool {
	d := direction{to.X - from.X, to.Y - from.Y}
	for _, o := range p.offsets {
		if o == d {
			return landable(b, to, mover)
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
