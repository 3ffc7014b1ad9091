package chesspresenter

import (
	"errors"

	"github.com/park285/clickchess/internal/board"
	"github.com/park285/clickchess/internal/game"
	"github.com/park285/clickchess/internal/notation"
	"github.com/park285/clickchess/pkg/chessdto"
)

// ToDTOState snapshots g. Squares are named algebraically and pieces are
// drawn with set.
func ToDTOState(g *game.Game, set *PieceSet) *chessdto.SessionState {
	if g == nil {
		return nil
	}
	b := g.Board()
	turn := g.CurrentTurn()
	state := &chessdto.SessionState{
		SessionUUID: g.ID(),
		Rules:       g.Rules().Name(),
		Turn:        turn.String(),
		TurnPlayer:  g.Player(turn).Name,
		WhitePlayer: g.Player(board.White).Name,
		BlackPlayer: g.Player(board.Black).Name,
		Scores: chessdto.Scores{
			White: g.ScoreOf(board.White),
			Black: g.ScoreOf(board.Black),
		},
		MoveCount: g.Ply(),
		FEN:       notation.EncodeFEN(b, turn, g.Ply()),
	}

	b.Each(func(s board.Square, p board.Piece) {
		if p.IsEmpty() {
			return
		}
		glyph, _ := set.Glyph(p)
		state.Cells = append(state.Cells, chessdto.Cell{
			Square: s.String(),
			X:      s.X,
			Y:      s.Y,
			Piece:  p.Type.String(),
			Color:  p.Color.String(),
			Glyph:  glyph,
		})
	})

	sel := g.Selection()
	if from, ok := sel.From(); ok {
		state.Selected = from.String()
		state.LegalMoves = squareNames(sel.Destinations())
	}
	if hist := g.History(); len(hist) > 0 {
		last := ToDTOMove(hist[len(hist)-1])
		state.LastMove = &last
	}
	return state
}

func ToDTOMove(rec game.MoveRecord) chessdto.MoveEntry {
	e := chessdto.MoveEntry{
		Ply:    rec.Ply,
		Color:  rec.Color.String(),
		Player: rec.Player,
		From:   rec.From.String(),
		To:     rec.To.String(),
		Piece:  rec.Piece.String(),
	}
	if rec.IsCapture() {
		e.Captured = rec.Captured.String()
		e.Points = game.CaptureReward
	}
	return e
}

func ToDTOHistory(list []game.MoveRecord) []chessdto.MoveEntry {
	out := make([]chessdto.MoveEntry, 0, len(list))
	for _, rec := range list {
		out = append(out, ToDTOMove(rec))
	}
	return out
}

// ToDTOClick summarises a click. piece is what stood on the clicked square
// before the click was applied.
func ToDTOClick(res game.ClickResult, piece board.Piece) *chessdto.ClickSummary {
	sum := &chessdto.ClickSummary{
		Outcome: res.Outcome.String(),
		Square:  res.Square.String(),
	}
	if !piece.IsEmpty() {
		sum.Piece = piece.String()
	}
	if res.Outcome == game.ClickSelected {
		sum.Destinations = squareNames(res.Destinations)
	}
	if res.Move != nil {
		m := ToDTOMove(*res.Move)
		sum.Move = &m
	}
	sum.Error = ToDomainError(res.Err)
	return sum
}

// ToDomainError classifies err for presentation. It returns nil for nil.
func ToDomainError(err error) *chessdto.DomainError {
	if err == nil {
		return nil
	}
	var de chessdto.DomainError
	if errors.As(err, &de) {
		return &de
	}
	code := chessdto.CodeInternal
	switch {
	case errors.Is(err, board.ErrOutOfBounds):
		code = chessdto.CodeOutOfBounds
	case errors.Is(err, board.ErrNoPieceAtSource):
		code = chessdto.CodeNoPiece
	case errors.Is(err, game.ErrNotYourTurn):
		code = chessdto.CodeNotYourTurn
	case errors.Is(err, board.ErrIllegalMove):
		code = chessdto.CodeIllegalMove
	case errors.Is(err, notation.ErrBadSquare):
		code = chessdto.CodeBadSquare
	}
	return &chessdto.DomainError{
		Code:      code,
		Message:   err.Error(),
		Retryable: code != chessdto.CodeInternal,
	}
}

func squareNames(list []board.Square) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.String())
	}
	return out
}
