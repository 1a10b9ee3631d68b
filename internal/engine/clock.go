package engine

import "github.com/abarnes1/chess-sub000/internal/chess"

// HalfMoveClock counts half-moves since the last capture or pawn action.
type HalfMoveClock int

// After returns the clock value following a.
func (c HalfMoveClock) After(a Action) HalfMoveClock {
	if a.Captured() != nil || a.Piece().Kind == chess.Pawn {
		return 0
	}
	return c + 1
}
