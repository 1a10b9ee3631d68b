package engine

import "github.com/abarnes1/chess-sub000/internal/chess"

// ThreatMap is the set of squares a group of pieces could capture on.
// Each capture ray covers squares up to and including its first blocker.
type ThreatMap struct {
	covered [chess.NumSquares]bool
}

// NewThreatMap builds the threat map of attackers on b.
func NewThreatMap(b *chess.Board, attackers []*chess.Piece) *ThreatMap {
	t := &ThreatMap{}
	for _, p := range attackers {
		for _, path := range chess.PathGroupFromOffsets(p.Position, p.CaptureOffsets()) {
			for sq := range path {
				t.covered[sq.Index()] = true
				if !b.IsEmpty(sq) {
					break
				}
			}
		}
	}
	return t
}

// ThreatsAgainst builds the threat map of colour's opponents.
func ThreatsAgainst(b *chess.Board, colour chess.Colour) *ThreatMap {
	return NewThreatMap(b, b.Pieces(colour.Opposite()))
}

// Covers reports whether pos is threatened.
func (t *ThreatMap) Covers(pos chess.Position) bool {
	i := pos.Index()
	return i >= 0 && t.covered[i]
}

// Squares lists the covered squares in index order.
func (t *ThreatMap) Squares() []chess.Position {
	var out []chess.Position
	for i, c := range t.covered {
		if c {
			out = append(out, chess.PositionFromIndex(i))
		}
	}
	return out
}
