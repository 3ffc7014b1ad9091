package board

import (
	"fmt"
	"strings"
)

const (
	RulesPartial  = "partial"
	RulesStandard = "standard"
)

// Move is a from/to pair.
type Move struct {
	From Square
	To   Square
}

func (m Move) String() string { return m.From.String() + m.To.String() }

// Ruleset decides move legality. Each piece type is looked up in a pattern
// table; types without an entry can never move.
type Ruleset struct {
	name       string
	patterns   [Pawn + 1]pattern
	kingSafety bool
}

// Partial returns the reduced rule table: pawns, rooks and bishops move,
// kings, queens and knights never do, and check is not considered.
func Partial() *Ruleset {
	r := &Ruleset{name: RulesPartial}
	r.patterns[Pawn] = pawnPattern{}
	r.patterns[Rook] = slidePattern{dirs: orthogonal}
	r.patterns[Bishop] = slidePattern{dirs: diagonal}
	return r
}

// Standard returns the full piece table with king safety. Castling, en
// passant and promotion are not part of it.
func Standard() *Ruleset {
	r := Partial()
	r.name = RulesStandard
	r.patterns[Queen] = slidePattern{dirs: allAround}
	r.patterns[Knight] = stepPattern{offsets: knightHops}
	r.patterns[King] = stepPattern{offsets: allAround}
	r.kingSafety = true
	return r
}

// RulesetByName resolves "partial" or "standard"; blank means partial.
func RulesetByName(name string) (*Ruleset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", RulesPartial:
		return Partial(), nil
	case RulesStandard:
		return Standard(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRuleset, name)
	}
}

func (r *Ruleset) Name() string { return r.name }

func (r *Ruleset) patternFor(t PieceType) pattern {
	if t < 0 || int(t) >= len(r.patterns) {
		return nil
	}
	return r.patterns[t]
}

// Validate explains why from->to is not legal on b, or returns nil.
func (r *Ruleset) Validate(b *Board, from, to Square) error {
	if !from.InBounds() || !to.InBounds() {
		return fmt.Errorf("%s-%s: %w", from, to, ErrOutOfBounds)
	}
	mover := b.At(from)
	if mover.IsEmpty() {
		return fmt.Errorf("%s: %w", from, ErrNoPieceAtSource)
	}
	p := r.patternFor(mover.Type)
	if p == nil || !p.reaches(b, from, to, mover) {
		return fmt.Errorf("%s %s-%s: %w", mover, from, to, ErrIllegalMove)
	}
	if r.kingSafety && r.exposesKing(b, from, to, mover.Color) {
		return fmt.Errorf("%s %s-%s leaves king in check: %w", mover, from, to, ErrIllegalMove)
	}
	return nil
}

// IsLegal reports whether the piece on from may move to to. Off-board
// coordinates and empty sources simply yield false.
func (r *Ruleset) IsLegal(b *Board, from, to Square) bool {
	return r.Validate(b, from, to) == nil
}

// LegalDestinations tests every square of the board against from and
// returns the legal ones in row-major order.
func (r *Ruleset) LegalDestinations(b *Board, from Square) []Square {
	out := make([]Square, 0, 8)
	if b.At(from).IsEmpty() {
		return out
	}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if to := Sq(x, y); r.IsLegal(b, from, to) {
				out = append(out, to)
			}
		}
	}
	return out
}

// LegalMoves lists every legal move available to side.
func (r *Ruleset) LegalMoves(b *Board, side Color) []Move {
	var moves []Move
	b.Each(func(s Square, p Piece) {
		if p.IsEmpty() || p.Color != side {
			return
		}
		for _, to := range r.LegalDestinations(b, s) {
			moves = append(moves, Move{From: s, To: to})
		}
	})
	return moves
}

// InCheck reports whether side's king is attacked. A side without a king is
// never in check.
func (r *Ruleset) InCheck(b *Board, side Color) bool {
	king, ok := b.Find(NewPiece(King, side))
	if !ok {
		return false
	}
	return r.attacked(b, king, side.Other())
}

func (r *Ruleset) exposesKing(b *Board, from, to Square, side Color) bool {
	next := b.Clone()
	if _, err := next.Relocate(from, to); err != nil {
		return true
	}
	return r.InCheck(next, side)
}

// attacked reports whether any piece of color by reaches target.
func (r *Ruleset) attacked(b *Board, target Square, by Color) bool {
	hit := false
	b.Each(func(s Square, p Piece) {
		if hit || p.IsEmpty() || p.Color != by {
			return
		}
		if pat := r.patternFor(p.Type); pat != nil && pat.reaches(b, s, target, p) {
			hit = true
		}
	})
	return hit
}
