package engine

import "github.com/abarnes1/chess-sub000/internal/chess"

// GenerateActions returns the pseudo-legal actions of p in s: every action
// its movement allows, without checking whether it leaves its own king
// attacked.
func GenerateActions(s *GameState, p *chess.Piece) []Action {
	var actions []Action
	if p.CanPromote() {
		actions = pawnActions(s.board, p)
	} else {
		actions = pieceActions(s.board, p)
	}
	actions = append(actions, enPassantActions(s, p)...)
	actions = append(actions, castlingActions(s, p)...)
	return actions
}

// pieceActions walks every movement path of p. Empty squares yield moves;
// the first occupied square ends the path and yields a capture if it holds
// an enemy. Pieces whose captures differ from their moves are handled by
// pawnActions.
func pieceActions(b *chess.Board, p *chess.Piece) []Action {
	var actions []Action
	for _, path := range chess.PathGroupFromOffsets(p.Position, p.MoveOffsets()) {
		for sq := range path {
			occupant := b.At(sq)
			if occupant == nil {
				actions = append(actions, NewMove(p, sq))
				continue
			}
			if occupant.Colour != p.Colour {
				actions = append(actions, NewCapture(p, occupant))
			}
			break
		}
	}
	return actions
}

// pawnActions generates pawn advances onto empty squares and diagonal
// captures, turning either into an unresolved promotion on the last rank.
func pawnActions(b *chess.Board, p *chess.Piece) []Action {
	var actions []Action
	for _, path := range chess.PathGroupFromOffsets(p.Position, p.MoveOffsets()) {
		for sq := range path {
			if !b.IsEmpty(sq) {
				break
			}
			if sq.Rank == p.PromotionRank() {
				promote, _ := NewPromote(p, sq, chess.NoKind)
				actions = append(actions, promote)
				continue
			}
			actions = append(actions, NewMove(p, sq))
		}
	}
	for _, o := range p.CaptureOffsets() {
		sq, ok := p.Position.Next(o)
		if !ok {
			continue
		}
		victim := b.At(sq)
		if victim == nil || victim.Colour == p.Colour {
			continue
		}
		if sq.Rank == p.PromotionRank() {
			promote, _ := NewPromoteCapture(p, victim, chess.NoKind)
			actions = append(actions, promote)
			continue
		}
		actions = append(actions, NewCapture(p, victim))
	}
	return actions
}

// expandPromotions replaces each unresolved promotion with one action per
// promotion choice.
func expandPromotions(actions []Action) []Action {
	out := make([]Action, 0, len(actions))
	for _, a := range actions {
		promo, ok := a.(Promotion)
		if !ok || promo.PromotesTo() != chess.NoKind {
			out = append(out, a)
			continue
		}
		for _, kind := range chess.PromotionChoices {
			resolved, err := promo.WithPromotion(kind)
			if err == nil {
				out = append(out, resolved)
			}
		}
	}
	return out
}
