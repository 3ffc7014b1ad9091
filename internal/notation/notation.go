// Package notation converts boards and squares to and from the text forms
// used by the driver and by tests: algebraic square names and FEN.
package notation

import (
	"errors"
	"fmt"
	"strings"

	nchess "github.com/corentings/chess/v2"

	"github.com/park285/clickchess/internal/board"
)

var ErrBadSquare = errors.New("invalid square")

// ParseSquare accepts "e2" style names as well as "4,1" column,row pairs.
func ParseSquare(s string) (board.Square, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if len(v) == 2 && v[0] >= 'a' && v[0] <= 'h' && v[1] >= '1' && v[1] <= '8' {
		return board.Sq(int(v[0]-'a'), int(v[1]-'1')), nil
	}
	var x, y int
	if n, err := fmt.Sscanf(v, "%d,%d", &x, &y); err == nil && n == 2 {
		return board.Sq(x, y), nil
	}
	return board.Square{}, fmt.Errorf("%w: %q", ErrBadSquare, s)
}

// ToLib maps a board square onto the library's square: column to file,
// row to rank.
func ToLib(s board.Square) nchess.Square {
	return nchess.NewSquare(nchess.File(s.X), nchess.Rank(s.Y))
}

// FromLib is the inverse of ToLib.
func FromLib(sq nchess.Square) board.Square {
	return board.Sq(int(sq.File()), int(sq.Rank()))
}

func toLibPiece(p board.Piece) nchess.Piece {
	if p.IsEmpty() {
		return nchess.NoPiece
	}
	c := nchess.White
	if p.Color == board.Black {
		c = nchess.Black
	}
	var t nchess.PieceType
	switch p.Type {
	case board.King:
		t = nchess.King
	case board.Queen:
		t = nchess.Queen
	case board.Bishop:
		t = nchess.Bishop
	case board.Knight:
		t = nchess.Knight
	case board.Rook:
		t = nchess.Rook
	default:
		t = nchess.Pawn
	}
	return nchess.NewPiece(t, c)
}

func fromLibPiece(p nchess.Piece) board.Piece {
	if p == nchess.NoPiece {
		return board.Empty
	}
	c := board.White
	if p.Color() == nchess.Black {
		c = board.Black
	}
	var t board.PieceType
	switch p.Type() {
	case nchess.King:
		t = board.King
	case nchess.Queen:
		t = board.Queen
	case nchess.Bishop:
		t = board.Bishop
	case nchess.Knight:
		t = board.Knight
	case nchess.Rook:
		t = board.Rook
	case nchess.Pawn:
		t = board.Pawn
	}
	return board.NewPiece(t, c)
}

// Placement returns the piece-placement field of FEN for b.
func Placement(b *board.Board) string {
	m := make(map[nchess.Square]nchess.Piece, 32)
	b.Each(func(s board.Square, p board.Piece) {
		if !p.IsEmpty() {
			m[ToLib(s)] = toLibPiece(p)
		}
	})
	return nchess.NewBoard(m).String()
}

// EncodeFEN writes b with turn as side to move. Castling and en passant
// fields are always "-" since neither exists in this game.
func EncodeFEN(b *board.Board, turn board.Color, ply int) string {
	side := "w"
	if turn == board.Black {
		side = "b"
	}
	return fmt.Sprintf("%s %s - - 0 %d", Placement(b), side, ply/2+1)
}

// DecodeFEN parses a FEN string into a board and the side to move.
func DecodeFEN(fen string) (*board.Board, board.Color, error) {
	opt, err := nchess.FEN(strings.TrimSpace(fen))
	if err != nil {
		return nil, board.NoColor, fmt.Errorf("decode fen: %w", err)
	}
	pos := nchess.NewGame(opt).Position()
	b := &board.Board{}
	for sq, p := range pos.Board().SquareMap() {
		if err := b.Set(FromLib(sq), fromLibPiece(p)); err != nil {
			return nil, board.NoColor, err
		}
	}
	turn := board.White
	if pos.Turn() == nchess.Black {
		turn = board.Black
	}
	return b, turn, nil
}
