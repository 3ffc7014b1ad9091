package game

import "github.com/park285/clickchess/internal/board"

// Selection is the square a player picked up plus where it may go.
type Selection struct {
	active       bool
	from         board.Square
	destinations []board.Square
}

func (s Selection) Active() bool { return s.active }

// From returns the selected square; ok is false with nothing selected.
func (s Selection) From() (board.Square, bool) {
	return s.from, s.active
}

// Destinations returns a copy of the legal target squares.
func (s Selection) Destinations() []board.Square {
	return append([]board.Square(nil), s.destinations...)
}

// Contains reports whether sq is one of the highlighted destinations.
func (s Selection) Contains(sq board.Square) bool {
	for _, d := range s.destinations {
		if d == sq {
			return true
		}
	}
	return false
}

func (s *Selection) set(from board.Square, dests []board.Square) {
	s.active = true
	s.from = from
	s.destinations = dests
}

func (s *Selection) clear() {
	s.active = false
	s.from = board.Square{}
	s.destinations = nil
}
