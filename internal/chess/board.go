package chess

import (
	"fmt"
	"strings"

	"github.com/abarnes1/chess-sub000/internal/errors"
)

// Board is a 64-square arena mapping positions to pieces. Slots are indexed
// by Position.Index; a piece's Position always matches its slot.
type Board struct {
	squares [NumSquares]*Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// At returns the piece on pos, or nil for empty and off-board squares.
func (b *Board) At(pos Position) *Piece {
	i := pos.Index()
	if i < 0 {
		return nil
	}
	return b.squares[i]
}

// IsEmpty returns true if pos is on the board and unoccupied.
func (b *Board) IsEmpty(pos Position) bool {
	i := pos.Index()
	return i >= 0 && b.squares[i] == nil
}

// Add places p on the board at p.Position.
func (b *Board) Add(p *Piece) error {
	i := p.Position.Index()
	if i < 0 {
		return fmt.Errorf("adding %s %s: %w", p.Colour, p.Kind, p.Position.Validate())
	}
	if b.squares[i] != nil {
		return fmt.Errorf("adding %s %s on %s: %w", p.Colour, p.Kind, p.Position, errors.ErrSquareOccupied)
	}
	b.squares[i] = p
	return nil
}

// Remove takes the piece off pos and returns it (nil if the square was empty).
// The piece keeps its last Position so it can be restored with Add.
func (b *Board) Remove(pos Position) *Piece {
	i := pos.Index()
	if i < 0 {
		return nil
	}
	p := b.squares[i]
	b.squares[i] = nil
	return p
}

// Move relocates the piece on from to the empty square to.
func (b *Board) Move(from, to Position) error {
	fi, ti := from.Index(), to.Index()
	if fi < 0 || ti < 0 {
		return fmt.Errorf("moving %s-%s: %w", from, to, errors.ErrInvalidPosition)
	}
	p := b.squares[fi]
	if p == nil {
		return fmt.Errorf("moving from %s: %w", from, errors.ErrEmptySquare)
	}
	if b.squares[ti] != nil {
		return fmt.Errorf("moving to %s: %w", to, errors.ErrSquareOccupied)
	}
	b.squares[fi] = nil
	b.squares[ti] = p
	p.Position = to
	return nil
}

// Pieces returns the pieces of one colour in square order (a1, b1, ... h8).
func (b *Board) Pieces(colour Colour) []*Piece {
	var out []*Piece
	for _, p := range b.squares {
		if p != nil && p.Colour == colour {
			out = append(out, p)
		}
	}
	return out
}

// AllPieces returns every piece on the board in square order.
func (b *Board) AllPieces() []*Piece {
	var out []*Piece
	for _, p := range b.squares {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// King returns the king of the given colour, or nil if there is none.
func (b *Board) King(colour Colour) *Piece {
	for _, p := range b.squares {
		if p != nil && p.Kind == King && p.Colour == colour {
			return p
		}
	}
	return nil
}

// Copy creates a deep copy of the board; the copy shares no pieces with b.
func (b *Board) Copy() *Board {
	c := &Board{}
	for i, p := range b.squares {
		if p != nil {
			dup := *p
			c.squares[i] = &dup
		}
	}
	return c
}

// Snapshot returns value copies of all pieces, for read-only consumers.
func (b *Board) Snapshot() []Piece {
	var out []Piece
	for _, p := range b.squares {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

// Placement returns the FEN piece-placement field (ranks 8..1).
func (b *Board) Placement() string {
	var sb strings.Builder
	for rank := LastRank; rank >= FirstRank; rank-- {
		emptyCount := 0
		for col := FirstCol; col <= LastCol; col++ {
			p := b.At(Pos(col, rank))
			if p == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > FirstRank {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// String renders the board as an 8x8 text diagram with White at the bottom.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := LastRank; rank >= FirstRank; rank-- {
		sb.WriteByte(byte(rank))
		for col := FirstCol; col <= LastCol; col++ {
			sb.WriteByte(' ')
			if p := b.At(Pos(col, rank)); p != nil {
				sb.WriteByte(p.Symbol())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
