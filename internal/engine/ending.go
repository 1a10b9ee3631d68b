package engine

import (
	"fmt"

	"github.com/abarnes1/chess-sub000/internal/chess"
)

// EndingKind classifies how a game ended.
type EndingKind int

const (
	Checkmate EndingKind = iota
	Stalemate
	SeventyFiveMoveRule
	FivefoldRepetition
	DeadPosition
)

func (k EndingKind) String() string {
	switch k {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case SeventyFiveMoveRule:
		return "75-move rule"
	case FivefoldRepetition:
		return "fivefold repetition"
	case DeadPosition:
		return "dead position"
	}
	return fmt.Sprintf("EndingKind(%d)", int(k))
}

// Ending records a finished game. Winner is meaningful only when Decisive.
type Ending struct {
	Kind     EndingKind
	Decisive bool
	Winner   chess.Colour
	Message  string
}

// IsDraw reports whether the game ended without a winner.
func (e *Ending) IsDraw() bool {
	return !e.Decisive
}

// Result returns the PGN result token.
func (e *Ending) Result() string {
	switch {
	case !e.Decisive:
		return "1/2-1/2"
	case e.Winner == chess.White:
		return "1-0"
	default:
		return "0-1"
	}
}

func (e *Ending) String() string {
	return e.Message
}

// Ending returns the recorded ending, or nil while the game is in progress.
func (s *GameState) Ending() *Ending {
	return s.ending
}

// IsOver reports whether an ending has been recorded.
func (s *GameState) IsOver() bool {
	return s.ending != nil
}

// Result returns the PGN result token, "*" while the game is in progress.
func (s *GameState) Result() string {
	if s.ending == nil {
		return "*"
	}
	return s.ending.Result()
}

// CheckEnding evaluates the end conditions for the side to move, records
// the first that holds and returns it. Conditions are tested in order:
// checkmate, stalemate, the half-move limit, repetition, dead position.
// ApplyAction calls it after every action; call it directly after setup.
func (s *GameState) CheckEnding() *Ending {
	if s.ending != nil {
		return s.ending
	}
	s.ending = s.evaluateEnding()
	return s.ending
}

func (s *GameState) evaluateEnding() *Ending {
	mover := s.active
	if len(s.LegalActions(mover)) == 0 {
		if s.InCheck(mover) {
			winner := mover.Opposite()
			return &Ending{
				Kind:     Checkmate,
				Decisive: true,
				Winner:   winner,
				Message:  fmt.Sprintf("Checkmate: %s wins", winner),
			}
		}
		return &Ending{Kind: Stalemate, Message: fmt.Sprintf("Stalemate: %s has no legal move", mover)}
	}
	if s.rules.DrawHalfMoves > 0 && int(s.clock) >= s.rules.DrawHalfMoves {
		return &Ending{
			Kind:    SeventyFiveMoveRule,
			Message: fmt.Sprintf("Draw: %d half-moves without a capture or pawn move", s.clock),
		}
	}
	if s.rules.RepetitionLimit > 0 && s.repetitions.Max() >= s.rules.RepetitionLimit {
		return &Ending{
			Kind:    FivefoldRepetition,
			Message: fmt.Sprintf("Draw: position repeated %d times", s.repetitions.Max()),
		}
	}
	if label, dead := InsufficientMaterial(s.board); dead {
		return &Ending{Kind: DeadPosition, Message: "Dead position: " + label}
	}
	return nil
}

// InsufficientMaterial reports whether neither side can possibly mate and
// returns a label such as "K vs. K+N". Recognised cases:
//   - K vs K
//   - K+B vs K
//   - K+N vs K
//   - K+B vs K+B (bishops on the same square colour)
func InsufficientMaterial(b *chess.Board) (string, bool) {
	var minors [2][]*chess.Piece
	for _, p := range b.AllPieces() {
		switch p.Kind {
		case chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			return "", false
		}
		minors[p.Colour] = append(minors[p.Colour], p)
	}

	white, black := minors[chess.White], minors[chess.Black]
	label := materialLabel(white) + " vs. " + materialLabel(black)
	switch {
	case len(white) == 0 && len(black) == 0:
		return label, true
	case len(white)+len(black) == 1:
		return label, true
	case len(white) == 1 && len(black) == 1:
		if white[0].Kind == chess.Bishop && black[0].Kind == chess.Bishop &&
			white[0].Position.IsLight() == black[0].Position.IsLight() {
			return label, true
		}
	}
	return "", false
}

func materialLabel(minors []*chess.Piece) string {
	label := "K"
	for _, p := range minors {
		label += "+" + string(p.Kind.Letter())
	}
	return label
}
