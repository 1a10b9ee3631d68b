package config

import (
	"fmt"

	"github.com/abarnes1/chess-sub000/internal/engine"
	"github.com/abarnes1/chess-sub000/internal/errors"
)

// RulesConfig holds the automatic draw thresholds.
type RulesConfig struct {
	// DrawHalfMoves ends a game after this many half-moves without a
	// capture or pawn move
	DrawHalfMoves int `yaml:"draw_half_moves"`

	// RepetitionLimit ends a game once a position occurs this many times
	RepetitionLimit int `yaml:"repetition_limit"`
}

// NewRulesConfig creates a RulesConfig with the FIDE thresholds.
func NewRulesConfig() *RulesConfig {
	r := engine.DefaultRules()
	return &RulesConfig{DrawHalfMoves: r.DrawHalfMoves, RepetitionLimit: r.RepetitionLimit}
}

// Validate checks that both thresholds can be reached.
func (r *RulesConfig) Validate() error {
	if r.DrawHalfMoves < 1 {
		return fmt.Errorf("draw half-moves (%d) must be positive: %w", r.DrawHalfMoves, errors.ErrInvalidConfig)
	}
	if r.RepetitionLimit < 2 {
		return fmt.Errorf("repetition limit (%d) must be at least 2: %w", r.RepetitionLimit, errors.ErrInvalidConfig)
	}
	return nil
}

// EngineRules converts the section to engine rules.
func (r RulesConfig) EngineRules() engine.Rules {
	return engine.Rules{DrawHalfMoves: r.DrawHalfMoves, RepetitionLimit: r.RepetitionLimit}
}
