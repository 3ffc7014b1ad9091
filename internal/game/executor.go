package game

import "github.com/park285/clickchess/internal/board"

// CaptureReward is what a capture of any piece is worth.
const CaptureReward = 1

// Execute moves the piece on from to to and empties from. When to held a
// piece of the other side the mover earns CaptureReward. Legality is the
// caller's business; Execute only refuses off-board squares.
func Execute(b *board.Board, from, to board.Square, mover *Player) (board.Piece, bool, error) {
	moving := b.At(from)
	target := b.At(to)
	captured := moving.Opposes(target)

	if _, err := b.Relocate(from, to); err != nil {
		return board.Empty, false, err
	}
	if captured {
		mover.AddScore(CaptureReward)
		return target, true, nil
	}
	return board.Empty, false, nil
}
