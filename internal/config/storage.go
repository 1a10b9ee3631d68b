package config

import (
	"fmt"

	"github.com/abarnes1/chess-sub000/internal/errors"
)

// StorageConfig holds settings for the saved-game store.
type StorageConfig struct {
	// Dir is the database directory
	Dir string `yaml:"dir"`

	// InMemory keeps games in memory only; Dir is ignored
	InMemory bool `yaml:"in_memory"`
}

// NewStorageConfig creates a StorageConfig with default values.
func NewStorageConfig() *StorageConfig {
	return &StorageConfig{Dir: ".chess"}
}

// Validate checks that a database location is set.
func (s *StorageConfig) Validate() error {
	if !s.InMemory && s.Dir == "" {
		return fmt.Errorf("storage dir is empty: %w", errors.ErrInvalidConfig)
	}
	return nil
}
