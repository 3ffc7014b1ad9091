package board

import "errors"

var (
	ErrOutOfBounds     = errors.New("coordinate out of bounds")
	ErrNoPieceAtSource = errors.New("no piece at source square")
	ErrIllegalMove     = errors.New("illegal move")
	ErrUnknownRuleset  = errors.New("unknown ruleset")
)
