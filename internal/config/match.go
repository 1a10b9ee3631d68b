package config

import (
	"fmt"

	"github.com/abarnes1/chess-sub000/internal/errors"
)

// MatchConfig holds settings for self-play matches.
type MatchConfig struct {
	Seed     int64 `yaml:"seed"`      // random selector seed; 0 picks one from the clock
	MaxPlies int   `yaml:"max_plies"` // stop an unfinished game after this many plies; 0 = no limit
}

// NewMatchConfig creates a MatchConfig with default values.
func NewMatchConfig() *MatchConfig {
	return &MatchConfig{MaxPlies: 1000}
}

// Validate checks the ply limit.
func (m *MatchConfig) Validate() error {
	if m.MaxPlies < 0 {
		return fmt.Errorf("max plies (%d) is negative: %w", m.MaxPlies, errors.ErrInvalidConfig)
	}
	return nil
}

// PerftConfig holds settings for move-tree counting.
type PerftConfig struct {
	Workers      int `yaml:"workers"`       // parallel searches; 1 runs in the calling goroutine
	CacheEntries int `yaml:"cache_entries"` // transposition table size; 0 disables the cache
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{Workers: 1, CacheEntries: 1 << 20}
}

// Validate checks the worker count and cache size.
func (p *PerftConfig) Validate() error {
	if p.Workers < 1 {
		return fmt.Errorf("perft workers (%d) must be positive: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.CacheEntries < 0 {
		return fmt.Errorf("perft cache entries (%d) is negative: %w", p.CacheEntries, errors.ErrInvalidConfig)
	}
	return nil
}
