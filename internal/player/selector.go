// Package player connects action selectors to games. A selector picks one
// of the legal actions offered each turn; Match alternates two of them
// until the game ends.
package player

import (
	"math/rand"
	"strings"
	"time"

	"github.com/abarnes1/chess-sub000/internal/chess"
	"github.com/abarnes1/chess-sub000/internal/engine"
)

// Selector chooses an action from the legal actions of the side to move.
// Returning nil declines to move.
type Selector interface {
	Select(legal []engine.Action) engine.Action
}

// PromotionChooser is implemented by selectors that pick their own
// promotion piece. Selectors without it promote to a queen.
type PromotionChooser interface {
	ChoosePromotion(a engine.Action) chess.Kind
}

// SelectorFunc adapts a function to the Selector interface.
type SelectorFunc func(legal []engine.Action) engine.Action

// Select calls f(legal).
func (f SelectorFunc) Select(legal []engine.Action) engine.Action {
	return f(legal)
}

// RandomSelector picks uniformly among the legal actions.
type RandomSelector struct {
	rng *rand.Rand
}

// NewRandomSelector creates a selector with its own generator. A zero seed
// is replaced by the current time.
func NewRandomSelector(seed int64) *RandomSelector {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomSelector{rng: rand.New(rand.NewSource(seed))}
}

// Select returns a random legal action, or nil when there is none.
func (r *RandomSelector) Select(legal []engine.Action) engine.Action {
	if len(legal) == 0 {
		return nil
	}
	return legal[r.rng.Intn(len(legal))]
}

// ChoosePromotion picks a random promotion piece.
func (r *RandomSelector) ChoosePromotion(engine.Action) chess.Kind {
	return chess.PromotionChoices[r.rng.Intn(len(chess.PromotionChoices))]
}

// ScriptedSelector plays a fixed list of UCI actions in order, then
// declines.
type ScriptedSelector struct {
	moves []string
	next  int
}

// NewScriptedSelector creates a selector for moves such as "e2e4" or
// "e7e8n".
func NewScriptedSelector(moves ...string) *ScriptedSelector {
	return &ScriptedSelector{moves: moves}
}

// Select returns the legal action matching the next scripted move, or nil
// if the script is exhausted or the move is not legal.
func (s *ScriptedSelector) Select(legal []engine.Action) engine.Action {
	if s.next >= len(s.moves) {
		return nil
	}
	want := strings.ToLower(s.moves[s.next])
	for _, a := range legal {
		if len(want) >= 4 && a.UCI()[:4] == want[:4] {
			s.next++
			return a
		}
	}
	return nil
}

// ChoosePromotion reads the piece letter of the move just selected.
func (s *ScriptedSelector) ChoosePromotion(engine.Action) chess.Kind {
	if s.next == 0 {
		return chess.Queen
	}
	m := s.moves[s.next-1]
	if len(m) < 5 {
		return chess.Queen
	}
	return chess.KindFromLetter(m[4])
}

// Remaining returns the number of moves not yet played.
func (s *ScriptedSelector) Remaining() int {
	return len(s.moves) - s.next
}
