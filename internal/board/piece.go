package board

// Color identifies the side owning a piece. NoColor marks an empty square.
type Color int8

const (
	NoColor Color = iota
	White
	Black
)

// Other returns the opposing side. NoColor maps to itself.
func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColor
	}
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// forward is the row delta a pawn of this color advances by.
func (c Color) forward() int {
	if c == Black {
		return -1
	}
	return 1
}

// pawnRow is the row pawns of this color start on.
func (c Color) pawnRow() int {
	if c == Black {
		return 6
	}
	return 1
}

// PieceType is the kind of a piece.
type PieceType int8

const (
	NoPieceType PieceType = iota
	King
	Queen
	Bishop
	Knight
	Rook
	Pawn
)

// PieceTypes lists every real piece type in a stable order.
var PieceTypes = [...]PieceType{King, Queen, Bishop, Knight, Rook, Pawn}

func (t PieceType) String() string {
	switch t {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Rook:
		return "rook"
	case Pawn:
		return "pawn"
	default:
		return ""
	}
}

// Piece is the content of one square. The zero value is an empty square.
type Piece struct {
	Type  PieceType
	Color Color
}

// Empty is the content of a square holding nothing.
var Empty = Piece{}

func NewPiece(t PieceType, c Color) Piece {
	if t == NoPieceType || c == NoColor {
		return Empty
	}
	return Piece{Type: t, Color: c}
}

func (p Piece) IsEmpty() bool { return p.Type == NoPieceType }

// Opposes reports whether p and q are both pieces of different colors.
func (p Piece) Opposes(q Piece) bool {
	return !p.IsEmpty() && !q.IsEmpty() && p.Color != q.Color
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.Color.String() + " " + p.Type.String()
}
