package engine

import (
	"github.com/abarnes1/chess-sub000/internal/chess"
	"github.com/abarnes1/chess-sub000/internal/errors"
)

// EnPassantTarget is the square a pawn skipped with its double step, valid
// for the opponent's next action only.
type EnPassantTarget struct {
	square chess.Position
	valid  bool
}

// NewEnPassantTarget returns a target on pos.
func NewEnPassantTarget(pos chess.Position) EnPassantTarget {
	return EnPassantTarget{square: pos, valid: true}
}

// Square returns the target square and whether one is set.
func (t EnPassantTarget) Square() (chess.Position, bool) {
	return t.square, t.valid
}

// String returns the FEN en passant field.
func (t EnPassantTarget) String() string {
	if !t.valid {
		return "-"
	}
	return t.square.String()
}

// ParseEnPassantTarget decodes a FEN en passant field. Only ranks 3 and 6
// can hold a target.
func ParseEnPassantTarget(field string) (EnPassantTarget, error) {
	if field == "-" {
		return EnPassantTarget{}, nil
	}
	pos, err := chess.ParsePosition(field)
	if err != nil || !pos.InBounds() || (pos.Rank != '3' && pos.Rank != '6') {
		return EnPassantTarget{}, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "en passant", Value: field}
	}
	return NewEnPassantTarget(pos), nil
}

// enPassantTargetAfter returns the target created by a: the skipped square
// after a pawn double step, otherwise none.
func enPassantTargetAfter(a Action) EnPassantTarget {
	if a.Kind() != MoveAction || a.Piece().Kind != chess.Pawn {
		return EnPassantTarget{}
	}
	from, to := a.From(), a.To()
	if d := int(to.Rank) - int(from.Rank); d != 2 && d != -2 {
		return EnPassantTarget{}
	}
	return NewEnPassantTarget(chess.Pos(from.Col, chess.Rank((int(from.Rank)+int(to.Rank))/2)))
}

// enPassantActions returns the en passant capture open to pawn, if any.
// Only the side to move may capture en passant.
func enPassantActions(s *GameState, pawn *chess.Piece) []Action {
	target, ok := s.enPassant.Square()
	if !ok || pawn.Kind != chess.Pawn || pawn.Colour != s.active || !s.board.IsEmpty(target) {
		return nil
	}
	for _, o := range pawn.CaptureOffsets() {
		next, ok := pawn.Position.Next(o)
		if !ok || next != target {
			continue
		}
		victim := s.board.At(chess.Pos(target.Col, pawn.Position.Rank))
		if victim == nil || victim.Kind != chess.Pawn || victim.Colour == pawn.Colour {
			return nil
		}
		return []Action{NewEnPassant(pawn, target, victim)}
	}
	return nil
}
