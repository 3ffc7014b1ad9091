package notation

import (
	"errors"
	"sort"
	"testing"

	nchess "github.com/corentings/chess/v2"

	"github.com/park285/clickchess/internal/board"
)

const startPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

func TestParseSquare(t *testing.T) {
	cases := map[string]board.Square{
		"a1":   board.Sq(0, 0),
		"E2":   board.Sq(4, 1),
		"h8":   board.Sq(7, 7),
		"4,3":  board.Sq(4, 3),
		"-1,2": board.Sq(-1, 2),
	}
	for in, want := range cases {
		got, err := ParseSquare(in)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseSquare(%q): got %v want %v", in, got, want)
		}
	}
	for _, bad := range []string{"", "i1", "a9", "e", "x,y"} {
		if _, err := ParseSquare(bad); !errors.Is(err, ErrBadSquare) {
			t.Fatalf("ParseSquare(%q): expected ErrBadSquare, got %v", bad, err)
		}
	}
	if s := board.Sq(4, 1).String(); s != "e2" {
		t.Fatalf("Square.String: %s", s)
	}
}

func TestStartingPlacement(t *testing.T) {
	if got := Placement(board.NewStandard()); got != startPlacement {
		t.Fatalf("placement: got %s want %s", got, startPlacement)
	}
	if got := EncodeFEN(board.NewStandard(), board.White, 0); got != startPlacement+" w - - 0 1" {
		t.Fatalf("fen: %s", got)
	}
	if got := EncodeFEN(board.NewStandard(), board.Black, 3); got != startPlacement+" b - - 0 2" {
		t.Fatalf("fen: %s", got)
	}
}

func TestDecodeFENRoundTrip(t *testing.T) {
	b, turn, err := DecodeFEN(startPlacement + " w - - 0 1")
	if err != nil {
		t.Fatalf("DecodeFEN: %v", err)
	}
	if turn != board.White {
		t.Fatalf("turn: %v", turn)
	}
	if *b != *board.NewStandard() {
		t.Fatalf("decoded board differs from the starting layout")
	}

	const fen = "4k3/8/8/8/1b6/8/3P4/4K3 b - - 0 1"
	b, turn, err = DecodeFEN(fen)
	if err != nil {
		t.Fatalf("DecodeFEN: %v", err)
	}
	if turn != board.Black {
		t.Fatalf("turn: %v", turn)
	}
	if p := b.At(board.Sq(1, 3)); p != board.NewPiece(board.Bishop, board.Black) {
		t.Fatalf("b4: %s", p)
	}
	if got := EncodeFEN(b, turn, 1); got != fen {
		t.Fatalf("re-encode: got %s want %s", got, fen)
	}

	if _, _, err := DecodeFEN("not a fen"); err == nil {
		t.Fatalf("expected error for malformed fen")
	}
}

// Positions carry no castling rights or en passant target, so the library's
// move list must match the standard ruleset square for square.
func TestStandardRulesAgreeWithLibrary(t *testing.T) {
	fens := []string{
		startPlacement + " w - - 0 1",
		startPlacement + " b - - 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w - - 4 4",
		"r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR b - - 4 4",
		"4k3/8/8/8/1b6/8/3P4/4K3 w - - 0 1",
		"4k3/8/8/8/8/8/8/3rK3 w - - 0 1",
		"8/2P5/8/8/3k4/8/5p2/4K3 w - - 0 1",
		"r3k2r/8/8/3Q4/8/8/8/R3K2R b - - 0 1",
	}
	rules := board.Standard()
	for _, fen := range fens {
		b, turn, err := DecodeFEN(fen)
		if err != nil {
			t.Fatalf("DecodeFEN(%s): %v", fen, err)
		}
		got := map[string]bool{}
		for _, m := range rules.LegalMoves(b, turn) {
			got[m.String()] = true
		}

		opt, err := nchess.FEN(fen)
		if err != nil {
			t.Fatalf("nchess.FEN(%s): %v", fen, err)
		}
		want := map[string]bool{}
		for _, mv := range nchess.NewGame(opt).ValidMoves() {
			want[FromLib(mv.S1()).String()+FromLib(mv.S2()).String()] = true
		}

		if len(got) != len(want) {
			t.Fatalf("%s: got %d moves %v, library has %d %v", fen, len(got), keys(got), len(want), keys(want))
		}
		for k := range want {
			if !got[k] {
				t.Fatalf("%s: missing move %s", fen, k)
			}
		}
	}
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
