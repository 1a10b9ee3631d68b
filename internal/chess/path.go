package chess

import "iter"

// Next returns p shifted by one application of o, and false if the result
// is off the board.
func (p Position) Next(o Offset) (Position, bool) {
	next := Position{
		Col:  Col(int(p.Col) + o.DX),
		Rank: Rank(int(p.Rank) + o.DY),
	}
	if !p.InBounds() || !next.InBounds() {
		return Position{}, false
	}
	return next, true
}

// PathFromOffset yields the successive squares reached by repeating o from
// start: at most o.MaxRepeats of them, stopping at the board edge. The
// sequence can be ranged over any number of times.
func PathFromOffset(start Position, o Offset) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		current := start
		for i := 0; i < o.MaxRepeats; i++ {
			next, ok := current.Next(o)
			if !ok || !yield(next) {
				return
			}
			current = next
		}
	}
}

// PathGroupFromOffsets builds one path per offset, skipping offsets that
// leave the board immediately.
func PathGroupFromOffsets(start Position, offsets []Offset) []iter.Seq[Position] {
	group := make([]iter.Seq[Position], 0, len(offsets))
	for _, o := range offsets {
		if _, ok := start.Next(o); !ok {
			continue
		}
		group = append(group, PathFromOffset(start, o))
	}
	return group
}

// LinearPath returns the squares after a up to and including b when both lie
// on a common rank, file or diagonal. It returns false otherwise, and for
// a == b.
func LinearPath(a, b Position) ([]Position, bool) {
	if !a.InBounds() || !b.InBounds() || a == b {
		return nil, false
	}
	dx := int(b.Col) - int(a.Col)
	dy := int(b.Rank) - int(a.Rank)
	if dx != 0 && dy != 0 && abs(dx) != abs(dy) {
		return nil, false
	}

	n := max(abs(dx), abs(dy))
	dir := Step(sign(dx), sign(dy))
	path := make([]Position, 0, n)
	for sq := range PathFromOffset(a, SlideN(dir.DX, dir.DY, n)) {
		path = append(path, sq)
	}
	return path, true
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
