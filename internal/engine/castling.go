package engine

import (
	"fmt"
	"strings"

	"github.com/abarnes1/chess-sub000/internal/chess"
	"github.com/abarnes1/chess-sub000/internal/errors"
)

// CastlingSide identifies the wing a castling happens on.
type CastlingSide int

const (
	KingSide CastlingSide = iota
	QueenSide
)

func (s CastlingSide) String() string {
	if s == KingSide {
		return "king side"
	}
	return "queen side"
}

// castlingPair is one (king square, rook square) permission.
type castlingPair struct {
	colour  chess.Colour
	side    chess.Col // rook file
	symbol  byte
	enabled bool
}

func (p castlingPair) king() chess.Position {
	return chess.Pos('e', chess.HomeRank(p.colour))
}

func (p castlingPair) rook() chess.Position {
	return chess.Pos(p.side, chess.HomeRank(p.colour))
}

// CastlingRights holds the four castling permissions in FEN order (K, Q, k, q).
// It is a value type; copying it snapshots it.
type CastlingRights struct {
	pairs [4]castlingPair
}

func castlingIndex(colour chess.Colour, side CastlingSide) int {
	i := int(side)
	if colour == chess.Black {
		i += 2
	}
	return i
}

func newCastlingRights(enabled bool) CastlingRights {
	var c CastlingRights
	c.pairs = [4]castlingPair{
		{colour: chess.White, side: 'h', symbol: 'K', enabled: enabled},
		{colour: chess.White, side: 'a', symbol: 'Q', enabled: enabled},
		{colour: chess.Black, side: 'h', symbol: 'k', enabled: enabled},
		{colour: chess.Black, side: 'a', symbol: 'q', enabled: enabled},
	}
	return c
}

// NewCastlingRights returns rights with all four permissions enabled.
func NewCastlingRights() CastlingRights {
	return newCastlingRights(true)
}

// NoCastlingRights returns rights with every permission revoked.
func NoCastlingRights() CastlingRights {
	return newCastlingRights(false)
}

// ParseCastlingRights decodes a FEN castling field ("KQkq", "Kq", "-").
func ParseCastlingRights(field string) (CastlingRights, error) {
	rights := NoCastlingRights()
	if field == "-" {
		return rights, nil
	}
	if field == "" {
		return rights, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "castling", Value: field}
	}
	for i := 0; i < len(field); i++ {
		found := false
		for j := range rights.pairs {
			if rights.pairs[j].symbol == field[i] && !rights.pairs[j].enabled {
				rights.pairs[j].enabled = true
				found = true
				break
			}
		}
		if !found {
			return rights, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "castling", Value: field}
		}
	}
	return rights, nil
}

// Allowed reports whether colour still has the right to castle on side.
func (c CastlingRights) Allowed(colour chess.Colour, side CastlingSide) bool {
	return c.pairs[castlingIndex(colour, side)].enabled
}

// Revoke removes one permission.
func (c *CastlingRights) Revoke(colour chess.Colour, side CastlingSide) {
	c.pairs[castlingIndex(colour, side)].enabled = false
}

// Mask packs the rights into four bits in FEN order.
func (c CastlingRights) Mask() uint8 {
	var m uint8
	for i, p := range c.pairs {
		if p.enabled {
			m |= 1 << i
		}
	}
	return m
}

// Update revokes every permission whose king or rook square was vacated by
// a, and every permission whose rook was captured.
func (c *CastlingRights) Update(a Action) {
	vacated := []chess.Position{a.From()}
	if castle, ok := a.(*Castling); ok {
		vacated = append(vacated, castle.RookFrom())
	}
	if captured := a.Captured(); captured != nil {
		vacated = append(vacated, captured.Position)
	}
	for i := range c.pairs {
		p := &c.pairs[i]
		if !p.enabled {
			continue
		}
		for _, sq := range vacated {
			if sq == p.king() || sq == p.rook() {
				p.enabled = false
				break
			}
		}
	}
}

// String encodes the rights as a FEN castling field.
func (c CastlingRights) String() string {
	var sb strings.Builder
	for _, p := range c.pairs {
		if p.enabled {
			sb.WriteByte(p.symbol)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// castlingActions generates the castling actions available to king. The
// king must stand on its home square, the permission must still be held,
// a friendly rook must stand on the matching corner, the squares between
// them must be empty, and none of the three squares the king occupies or
// crosses may be covered by an enemy piece.
func castlingActions(s *GameState, king *chess.Piece) []Action {
	if !king.InitiatesCastling() {
		return nil
	}
	home := chess.Pos('e', chess.HomeRank(king.Colour))
	if king.Position != home {
		return nil
	}

	var threats *ThreatMap
	var actions []Action
	for _, side := range []CastlingSide{KingSide, QueenSide} {
		pair := s.castling.pairs[castlingIndex(king.Colour, side)]
		if !pair.enabled {
			continue
		}
		rook := s.board.At(pair.rook())
		if rook == nil || !rook.CastlingPartner() || rook.Colour != king.Colour {
			continue
		}
		between, ok := chess.LinearPath(home, rook.Position)
		if !ok || !allEmpty(s.board, between[:len(between)-1]) {
			continue
		}

		if threats == nil {
			threats = ThreatsAgainst(s.board, king.Colour)
		}
		dir := 1
		if side == QueenSide {
			dir = -1
		}
		kingTo := chess.Pos(chess.Col(int(home.Col)+2*dir), home.Rank)
		rookTo := chess.Pos(chess.Col(int(home.Col)+dir), home.Rank)
		if threats.Covers(home) || threats.Covers(rookTo) || threats.Covers(kingTo) {
			continue
		}
		actions = append(actions, NewCastling(king, rook, kingTo, rookTo))
	}
	return actions
}

func allEmpty(b *chess.Board, squares []chess.Position) bool {
	for _, sq := range squares {
		if !b.IsEmpty(sq) {
			return false
		}
	}
	return true
}

// castlingError describes why a castling request was refused.
func castlingError(colour chess.Colour, side CastlingSide) error {
	return fmt.Errorf("%s castling %s: %w", colour, side, errors.ErrIllegalAction)
}
