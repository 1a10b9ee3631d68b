package engine

import (
	"strconv"
	"strings"

	"github.com/abarnes1/chess-sub000/internal/chess"
)

// SAN returns standard algebraic notation for a legal action of the side
// to move: file or rank disambiguation where two like pieces reach the same
// square, "O-O" style castling, and a "+" or "#" suffix.
func (s *GameState) SAN(a Action) string {
	var sb strings.Builder
	switch a.Kind() {
	case CastlingAction:
		if a.(*Castling).Side() == KingSide {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}
	default:
		p := a.Piece()
		if p.Kind != chess.Pawn {
			sb.WriteByte(p.Kind.Letter())
			sb.WriteString(s.disambiguation(a))
		} else if IsCapture(a) {
			sb.WriteByte(byte(a.From().Col))
		}
		if IsCapture(a) {
			sb.WriteByte('x')
		}
		sb.WriteString(a.To().String())
		if promo, ok := a.(Promotion); ok && promo.PromotesTo() != chess.NoKind {
			sb.WriteByte('=')
			sb.WriteByte(promo.PromotesTo().Letter())
		}
	}
	sb.WriteString(s.checkSuffix(a))
	return sb.String()
}

// disambiguation returns the origin file, rank, or square needed to tell a
// apart from other legal actions of the same piece kind to the same square.
func (s *GameState) disambiguation(a Action) string {
	var rivals []Action
	for _, other := range s.LegalActions(a.Piece().Colour) {
		if other.From() != a.From() && other.To() == a.To() && other.Piece().Kind == a.Piece().Kind {
			rivals = append(rivals, other)
		}
	}
	if len(rivals) == 0 {
		return ""
	}
	sameFile, sameRank := false, false
	for _, r := range rivals {
		if r.From().Col == a.From().Col {
			sameFile = true
		}
		if r.From().Rank == a.From().Rank {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return string(byte(a.From().Col))
	case !sameRank:
		return string(byte(a.From().Rank))
	default:
		return a.From().String()
	}
}

func (s *GameState) checkSuffix(a Action) string {
	if IsUnresolvedPromotion(a) || a.Piece().Colour != s.active {
		return ""
	}
	s.apply(a)
	defer s.undo()
	opponent := s.active
	if !s.InCheck(opponent) {
		return ""
	}
	if len(s.LegalActions(opponent)) == 0 {
		return "#"
	}
	return "+"
}

// MoveList renders the history as numbered SAN text, e.g. "1. e4 e5 2. Nf3".
// The history is replayed on a copy of the starting position.
func (s *GameState) MoveList() string {
	if len(s.history) == 0 {
		return ""
	}
	replay, err := FromFEN(s.startFEN, WithRules(s.rules))
	if err != nil {
		return ""
	}
	var sb strings.Builder
	for i, rec := range s.history {
		a, err := replay.FindAction(rec.action.UCI())
		if err != nil {
			break
		}
		if replay.active == chess.White || i == 0 {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(replay.fullMove))
			if replay.active == chess.White {
				sb.WriteString(". ")
			} else {
				sb.WriteString("... ")
			}
		} else {
			sb.WriteByte(' ')
		}
		sb.WriteString(replay.SAN(a))
		replay.apply(a)
	}
	return sb.String()
}
