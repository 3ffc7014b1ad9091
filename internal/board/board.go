package board

import "fmt"

// Size is the number of rows and columns on the board.
const Size = 8

// Square addresses a cell by column X and row Y. Row 0 is White's back rank.
type Square struct {
	X int
	Y int
}

func Sq(x, y int) Square { return Square{X: x, Y: y} }

// InBounds reports whether both coordinates lie in [0, Size).
func (s Square) InBounds() bool {
	return s.X >= 0 && s.X < Size && s.Y >= 0 && s.Y < Size
}

// String renders the square in algebraic form ("e2"), or as raw
// coordinates when it lies off the board.
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.X, s.Y)
	}
	return string([]byte{byte('a' + s.X), byte('1' + s.Y)})
}

// Board is the logical 8x8 position. It is a plain value: assigning a Board
// copies the whole position.
type Board struct {
	cells [Size][Size]Piece // [y][x]
}

// NewStandard returns the starting layout. White occupies rows 0 and 1,
// Black rows 6 and 7, queens on column 3 and kings on column 4.
func NewStandard() *Board {
	b := &Board{}
	back := [Size]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x := 0; x < Size; x++ {
		b.cells[0][x] = NewPiece(back[x], White)
		b.cells[1][x] = NewPiece(Pawn, White)
		b.cells[6][x] = NewPiece(Pawn, Black)
		b.cells[7][x] = NewPiece(back[x], Black)
	}
	return b
}

// At returns the piece on s. Off-board squares read as Empty.
func (b *Board) At(s Square) Piece {
	if b == nil || !s.InBounds() {
		return Empty
	}
	return b.cells[s.Y][s.X]
}

// Set places p on s.
func (b *Board) Set(s Square, p Piece) error {
	if !s.InBounds() {
		return fmt.Errorf("set %s: %w", s, ErrOutOfBounds)
	}
	b.cells[s.Y][s.X] = p
	return nil
}

// Relocate copies the piece on from onto to and empties from. It returns
// whatever previously stood on to. No rule is checked.
func (b *Board) Relocate(from, to Square) (Piece, error) {
	if !from.InBounds() || !to.InBounds() {
		return Empty, fmt.Errorf("relocate %s-%s: %w", from, to, ErrOutOfBounds)
	}
	prev := b.cells[to.Y][to.X]
	b.cells[to.Y][to.X] = b.cells[from.Y][from.X]
	b.cells[from.Y][from.X] = Empty
	return prev, nil
}

// Clone returns an independent copy of b.
func (b *Board) Clone() *Board {
	if b == nil {
		return &Board{}
	}
	cp := *b
	return &cp
}

// Count returns how many non-empty squares the board holds.
func (b *Board) Count() int {
	n := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if !b.cells[y][x].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// Find returns the first square, in row-major order, holding p.
func (b *Board) Find(p Piece) (Square, bool) {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b.cells[y][x] == p {
				return Sq(x, y), true
			}
		}
	}
	return Square{}, false
}

// Each calls fn for every square in row-major order, row 0 first.
func (b *Board) Each(fn func(s Square, p Piece)) {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			fn(Sq(x, y), b.cells[y][x])
		}
	}
}
