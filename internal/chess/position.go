package chess

import (
	"fmt"

	"github.com/abarnes1/chess-sub000/internal/errors"
)

// Position is a file/rank coordinate. Out-of-bounds positions can be built
// freely (path walking relies on it); InBounds reports validity.
type Position struct {
	Col  Col
	Rank Rank
}

// Pos creates a position from its file and rank characters.
func Pos(col Col, rank Rank) Position {
	return Position{Col: col, Rank: rank}
}

// ParsePosition parses a two-character coordinate such as "e4". The result
// is not bounds checked: "z9" parses to an out-of-bounds position.
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("coordinate %q: %w", s, errors.ErrInvalidPosition)
	}
	return Position{Col: Col(s[0]), Rank: Rank(s[1])}, nil
}

// MustParsePosition is ParsePosition for literals; it panics on bad input.
func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

// InBounds returns true if the position lies on the board.
func (p Position) InBounds() bool {
	return p.Col >= FirstCol && p.Col <= LastCol && p.Rank >= FirstRank && p.Rank <= LastRank
}

// Validate returns ErrInvalidPosition for off-board positions.
func (p Position) Validate() error {
	if !p.InBounds() {
		return fmt.Errorf("square %s: %w", p, errors.ErrInvalidPosition)
	}
	return nil
}

// Index is the board arena projection (rank-'1')*8 + (col-'a'), or -1 when
// the position is off the board. Every square lookup goes through it.
func (p Position) Index() int {
	if !p.InBounds() {
		return -1
	}
	return int(p.Rank-FirstRank)*BoardSize + int(p.Col-FirstCol)
}

// PositionFromIndex is the inverse of Index.
func PositionFromIndex(i int) Position {
	return Position{
		Col:  FirstCol + Col(i%BoardSize),
		Rank: FirstRank + Rank(i/BoardSize),
	}
}

// IsLight returns true if the square is a light square (h1 is light).
func (p Position) IsLight() bool {
	return (int(p.Col-FirstCol)+int(p.Rank-FirstRank))%2 == 1
}

// String returns the algebraic coordinate, e.g. "e4".
func (p Position) String() string {
	return string([]byte{byte(p.Col), byte(p.Rank)})
}
