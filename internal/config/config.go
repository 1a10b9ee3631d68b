// Package config provides configuration for the chess tools: draw rules,
// saved-game storage, output formatting and self-play matches.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/abarnes1/chess-sub000/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int `yaml:"verbosity"` // 0=nothing, 1=summary, 2=running commentary

	Rules   RulesConfig   `yaml:"rules"`
	Storage StorageConfig `yaml:"storage"`
	Output  OutputConfig  `yaml:"output"`
	Match   MatchConfig   `yaml:"match"`
	Perft   PerftConfig   `yaml:"perft"`

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	LogFile    io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Rules:      *NewRulesConfig(),
		Storage:    *NewStorageConfig(),
		Output:     *NewOutputConfig(),
		Match:      *NewMatchConfig(),
		Perft:      *NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks every section.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d outside 0..2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	for _, v := range []interface{ Validate() error }{&c.Rules, &c.Storage, &c.Output, &c.Match, &c.Perft} {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Load decodes YAML from r over the defaults and validates the result.
// Unknown keys are rejected.
func Load(r io.Reader) (*Config, error) {
	cfg := NewConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding config: %v: %w", err, errors.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening config")
	}
	defer f.Close()
	cfg, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
