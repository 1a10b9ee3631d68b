package player

import (
	"fmt"
	"slices"

	"github.com/abarnes1/chess-sub000/internal/chess"
	"github.com/abarnes1/chess-sub000/internal/config"
	"github.com/abarnes1/chess-sub000/internal/engine"
	"github.com/abarnes1/chess-sub000/internal/errors"
)

// Match plays a game between two selectors.
type Match struct {
	White    Selector
	Black    Selector
	MaxPlies int // 0 = no limit

	cfg *config.Config
}

// NewMatch creates a match. The ply limit and logging come from cfg; a nil
// cfg plays silently with the default limit.
func NewMatch(white, black Selector, cfg *config.Config) *Match {
	if cfg == nil {
		cfg = config.NewConfig()
		cfg.Verbosity = 0
	}
	return &Match{White: white, Black: black, MaxPlies: cfg.Match.MaxPlies, cfg: cfg}
}

// Outcome summarises a finished or abandoned match.
type Outcome struct {
	Ending *engine.Ending // nil if the ply limit stopped the game
	Plies  int
	Result string
}

func (m *Match) selector(c chess.Colour) Selector {
	if c == chess.White {
		return m.White
	}
	return m.Black
}

// Play alternates the selectors on s until the game ends or MaxPlies
// actions have been applied. A selector that declines, or returns an
// action that is not legal, stops the match with an error.
func (m *Match) Play(s *engine.GameState) (*Outcome, error) {
	plies := 0
	for s.CheckEnding() == nil {
		if m.MaxPlies > 0 && plies >= m.MaxPlies {
			m.cfg.Logf(1, "Stopped after %d plies", plies)
			return &Outcome{Plies: plies, Result: s.Result()}, nil
		}

		colour := s.ActiveColour()
		legal := slices.Clone(s.LegalActions(colour))
		a := m.selector(colour).Select(legal)
		if a == nil {
			return nil, &errors.ActionError{Err: fmt.Errorf("%s: %w", colour, errors.ErrNoSelection), Ply: s.Ply() + 1}
		}
		if !s.IsLegal(a) {
			return nil, &errors.ActionError{Err: errors.ErrIllegalAction, Ply: s.Ply() + 1, Action: a.Notation()}
		}
		a, err := m.resolve(colour, a)
		if err != nil {
			return nil, &errors.ActionError{Err: err, Ply: s.Ply() + 1, Action: a.Notation()}
		}

		if m.cfg.Verbosity >= 2 {
			m.cfg.Logf(2, "%d. %s %s", s.FullMoveNumber(), colour, s.SAN(a))
		}
		if err := s.ApplyAction(a); err != nil {
			return nil, err
		}
		plies++
	}

	e := s.Ending()
	m.cfg.Logf(1, "%s (%s) after %d plies", e.Message, e.Result(), plies)
	return &Outcome{Ending: e, Plies: plies, Result: e.Result()}, nil
}

// resolve fills in an unresolved promotion from the selector's choice.
func (m *Match) resolve(colour chess.Colour, a engine.Action) (engine.Action, error) {
	promo, ok := a.(engine.Promotion)
	if !ok || promo.PromotesTo() != chess.NoKind {
		return a, nil
	}
	kind := chess.Queen
	if chooser, ok := m.selector(colour).(PromotionChooser); ok {
		kind = chooser.ChoosePromotion(a)
	}
	resolved, err := promo.WithPromotion(kind)
	if err != nil {
		return a, err
	}
	return resolved, nil
}
