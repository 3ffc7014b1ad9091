package game

import "github.com/park285/clickchess/internal/board"

// TurnManager tracks whose move it is. White always starts and the turn
// only changes through Advance.
type TurnManager struct {
	current board.Color
}

func NewTurnManager() *TurnManager {
	return &TurnManager{current: board.White}
}

func (t *TurnManager) Current() board.Color {
	if t == nil || t.current == board.NoColor {
		return board.White
	}
	return t.current
}

// Advance hands the move to the other side and returns it.
func (t *TurnManager) Advance() board.Color {
	t.current = t.Current().Other()
	return t.current
}
