package chesspresenter

import (
	"fmt"
	"strings"

	"github.com/park285/clickchess/internal/board"
)

// PieceSet maps each (type, color) pair to the text drawn for it.
type PieceSet struct {
	name   string
	glyphs map[board.Piece]string
}

func newPieceSet(name string, white, black [6]string) *PieceSet {
	s := &PieceSet{name: name, glyphs: make(map[board.Piece]string, 12)}
	for i, pt := range board.PieceTypes {
		s.glyphs[board.NewPiece(pt, board.White)] = white[i]
		s.glyphs[board.NewPiece(pt, board.Black)] = black[i]
	}
	return s
}

// UnicodeSet draws chess symbols. Order follows board.PieceTypes.
func UnicodeSet() *PieceSet {
	return newPieceSet("unicode",
		[6]string{"♔", "♕", "♗", "♘", "♖", "♙"},
		[6]string{"♚", "♛", "♝", "♞", "♜", "♟"},
	)
}

// LetterSet draws FEN letters, upper case for white.
func LetterSet() *PieceSet {
	return newPieceSet("letters",
		[6]string{"K", "Q", "B", "N", "R", "P"},
		[6]string{"k", "q", "b", "n", "r", "p"},
	)
}

func PieceSetByName(name string) (*PieceSet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "unicode":
		return UnicodeSet(), nil
	case "letters", "ascii":
		return LetterSet(), nil
	default:
		return nil, fmt.Errorf("unknown piece set %q", name)
	}
}

func (s *PieceSet) Name() string { return s.name }

// Glyph returns the drawing for p. Empty squares and unknown pieces have
// none.
func (s *PieceSet) Glyph(p board.Piece) (string, bool) {
	if s == nil || p.IsEmpty() {
		return "", false
	}
	g, ok := s.glyphs[p]
	return g, ok
}
