package chesspresenter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/park285/clickchess/internal/msgcat"
	"github.com/park285/clickchess/pkg/chessdto"
)

const (
	emptyMark = "·"
	legalMark = "•"
	files     = "a b c d e f g h"
)

// Formatter renders chess DTOs into terminal text.
type Formatter struct {
	cat *msgcat.Catalog

	white    *color.Color
	black    *color.Color
	legal    *color.Color
	capture  *color.Color
	selected *color.Color
	faint    *color.Color
}

// NewFormatter builds a Formatter. With useColor false every output is
// plain text; otherwise colour follows the terminal's capabilities.
func NewFormatter(cat *msgcat.Catalog, useColor bool) *Formatter {
	f := &Formatter{
		cat:      cat,
		white:    color.New(color.FgHiWhite, color.Bold),
		black:    color.New(color.FgHiBlue, color.Bold),
		legal:    color.New(color.FgHiGreen, color.Bold),
		capture:  color.New(color.BgRed, color.FgHiWhite),
		selected: color.New(color.BgYellow, color.FgBlack),
		faint:    color.New(color.Faint),
	}
	if !useColor {
		for _, c := range []*color.Color{f.white, f.black, f.legal, f.capture, f.selected, f.faint} {
			c.DisableColor()
		}
	}
	return f
}

// Board draws the position with row 8 on top. The selected piece is
// highlighted and its legal destinations carry a dot, or a marked piece
// when the move would capture.
func (f *Formatter) Board(state *chessdto.SessionState) string {
	if state == nil {
		return ""
	}
	cells := make(map[string]chessdto.Cell, len(state.Cells))
	for _, c := range state.Cells {
		cells[c.Square] = c
	}
	legal := make(map[string]bool, len(state.LegalMoves))
	for _, s := range state.LegalMoves {
		legal[s] = true
	}

	var sb strings.Builder
	sb.WriteString("  " + files + "\n")
	for rank := 8; rank >= 1; rank-- {
		sb.WriteString(fmt.Sprintf("%d ", rank))
		for file := 0; file < 8; file++ {
			sq := fmt.Sprintf("%c%d", 'a'+file, rank)
			sb.WriteString(f.cell(sq, cells, legal, state.Selected))
			if file < 7 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", rank))
	}
	sb.WriteString("  " + files)
	return sb.String()
}

func (f *Formatter) cell(sq string, cells map[string]chessdto.Cell, legal map[string]bool, selected string) string {
	c, occupied := cells[sq]
	if !occupied {
		if legal[sq] {
			return f.legal.Sprint(legalMark)
		}
		return f.faint.Sprint(emptyMark)
	}
	glyph := c.Glyph
	if glyph == "" {
		glyph = "?"
	}
	switch {
	case sq == selected:
		return f.selected.Sprint(glyph)
	case legal[sq]:
		return f.capture.Sprint(glyph)
	case c.Color == "black":
		return f.black.Sprint(glyph)
	default:
		return f.white.Sprint(glyph)
	}
}

// HUD is the status block: whose turn it is and both scores.
func (f *Formatter) HUD(state *chessdto.SessionState) string {
	if state == nil {
		return ""
	}
	lines := []string{
		f.cat.Text("game.turn", map[string]any{"Name": state.TurnPlayer}),
		f.cat.Text("game.score_white", map[string]any{"Score": state.Scores.White}),
		f.cat.Text("game.score_black", map[string]any{"Score": state.Scores.Black}),
	}
	return strings.Join(lines, "\n")
}

func (f *Formatter) Start(state *chessdto.SessionState) string {
	if state == nil {
		return ""
	}
	return f.cat.Text("game.start", map[string]any{
		"GameID": state.SessionUUID,
		"Rules":  state.Rules,
		"White":  state.WhitePlayer,
		"Black":  state.BlackPlayer,
	})
}

func (f *Formatter) Reset(state *chessdto.SessionState) string {
	if state == nil {
		return ""
	}
	return f.cat.Text("game.reset", map[string]any{"White": state.WhitePlayer})
}

// Click describes what a click did, including the score line on a capture.
func (f *Formatter) Click(sum *chessdto.ClickSummary) string {
	if sum == nil {
		return ""
	}
	switch sum.Outcome {
	case "selected":
		data := map[string]any{"Piece": sum.Piece, "Square": sum.Square}
		if len(sum.Destinations) == 0 {
			return f.cat.Text("click.selected_none", data)
		}
		data["Moves"] = strings.Join(sum.Destinations, ", ")
		return f.cat.Text("click.selected", data)
	case "moved":
		return f.Move(sum.Move)
	case "rejected":
		return f.cat.Text("click.rejected", map[string]any{
			"Square": sum.Square,
			"Reason": f.Error(sum.Error),
		})
	default:
		return f.cat.Text("click.ignored", map[string]any{"Square": sum.Square})
	}
}

// Destinations lists where a piece may go without selecting it.
func (f *Formatter) Destinations(piece, square string, moves []string) string {
	data := map[string]any{"Piece": piece, "Square": square}
	if len(moves) == 0 {
		return f.cat.Text("moves.none", data)
	}
	data["Moves"] = strings.Join(moves, ", ")
	return f.cat.Text("moves.list", data)
}

func (f *Formatter) Move(m *chessdto.MoveEntry) string {
	if m == nil {
		return ""
	}
	data := map[string]any{
		"Player":   m.Player,
		"Piece":    m.Piece,
		"From":     m.From,
		"To":       m.To,
		"Captured": m.Captured,
	}
	if m.Captured == "" {
		return f.cat.Text("click.moved", data)
	}
	return f.cat.Text("click.captured", data) + "\n" +
		f.cat.Text("game.scored", map[string]any{"Name": m.Player, "Points": m.Points})
}

func (f *Formatter) Scores(state *chessdto.SessionState) string {
	if state == nil {
		return ""
	}
	return fmt.Sprintf("%s: %d\n%s: %d",
		state.WhitePlayer, state.Scores.White,
		state.BlackPlayer, state.Scores.Black)
}

func (f *Formatter) History(entries []chessdto.MoveEntry) string {
	if len(entries) == 0 {
		return f.cat.Text("history.empty", nil)
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, f.cat.Text("history.line", map[string]any{
			"Ply":      e.Ply,
			"Player":   e.Player,
			"Piece":    e.Piece,
			"From":     e.From,
			"To":       e.To,
			"Captured": e.Captured,
		}))
	}
	return strings.Join(lines, "\n")
}

// Error turns a domain error into a player-facing reason. Codes without a
// catalog entry fall back to the error's own message.
func (f *Formatter) Error(de *chessdto.DomainError) string {
	if de == nil {
		return ""
	}
	if key := "error." + de.Code; de.Code != "" && f.cat.Has(key) {
		if s, err := f.cat.Render(key, map[string]any{}); err == nil {
			return s
		}
	}
	return de.Error()
}

func (f *Formatter) Help() string {
	return strings.TrimRight(f.cat.Text("help", nil), "\n")
}

// Usage and Unknown report driver input mistakes.
func (f *Formatter) Usage(usage string) string {
	return f.cat.Text("error.usage", map[string]any{"Usage": usage})
}

func (f *Formatter) Unknown(command string) string {
	return f.cat.Text("error.unknown_command", map[string]any{"Command": command})
}

func (f *Formatter) BadSquare(input string) string {
	return f.cat.Text("error.bad_square", map[string]any{"Input": input})
}
