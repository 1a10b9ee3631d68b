package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abarnes1/chess-sub000/internal/errors"
)

// Notation selects how actions are printed.
type Notation int

const (
	SAN  Notation = iota // Standard Algebraic Notation (Nf3, O-O, exd5)
	UCI                  // Long algebraic, lowercase (g1f3, e7e8q)
	Long                 // Piece-letter notation without disambiguation (Nf3, 0-0, exd6 e.p.)
)

var notationNames = map[Notation]string{
	SAN:  "san",
	UCI:  "uci",
	Long: "long",
}

// String returns the configuration name of the notation.
func (n Notation) String() string {
	if s, ok := notationNames[n]; ok {
		return s
	}
	return fmt.Sprintf("Notation(%d)", int(n))
}

// ParseNotation returns the notation named s, ignoring case.
func ParseNotation(s string) (Notation, error) {
	for n, name := range notationNames {
		if strings.EqualFold(s, name) {
			return n, nil
		}
	}
	return SAN, fmt.Errorf("notation %q: %w", s, errors.ErrInvalidConfig)
}

// MarshalYAML writes the notation by name.
func (n Notation) MarshalYAML() (interface{}, error) {
	return n.String(), nil
}

// UnmarshalYAML reads the notation by name.
func (n *Notation) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseNotation(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Notation for printed actions
	Notation Notation `yaml:"notation"`

	// ShowBoard prints a board diagram after each command
	ShowBoard bool `yaml:"show_board"`

	// KeepMoveNumbers controls whether move lists are numbered
	KeepMoveNumbers bool `yaml:"move_numbers"`

	// MaxLineLength wraps move lists; 0 disables wrapping
	MaxLineLength uint `yaml:"max_line_length"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Notation:        SAN,
		KeepMoveNumbers: true,
		MaxLineLength:   80,
	}
}

// Validate checks the notation is known.
func (o *OutputConfig) Validate() error {
	if _, ok := notationNames[o.Notation]; !ok {
		return fmt.Errorf("notation %d: %w", int(o.Notation), errors.ErrInvalidConfig)
	}
	return nil
}
