package game

import (
	"github.com/park285/clickchess/internal/board"
	"github.com/park285/clickchess/internal/obslog"
	"go.uber.org/zap"
)

// Player is one side of the game and its capture score.
type Player struct {
	Name  string
	Color board.Color
	score int
}

func NewPlayer(name string, color board.Color) *Player {
	return &Player{Name: name, Color: color}
}

func (p *Player) Score() int {
	if p == nil {
		return 0
	}
	return p.score
}

// AddScore credits points. Non-positive amounts are ignored so the score
// never decreases.
func (p *Player) AddScore(points int) {
	if p == nil || points <= 0 {
		return
	}
	p.score += points
	obslog.L().Info("player_scored",
		zap.String("player", p.Name),
		zap.String("color", p.Color.String()),
		zap.Int("points", points),
		zap.Int("total", p.score),
	)
}
