package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDrawHalfMoves sets the half-move draw threshold.
func (b *ConfigBuilder) WithDrawHalfMoves(n int) *ConfigBuilder {
	b.cfg.Rules.DrawHalfMoves = n
	return b
}

// WithRepetitionLimit sets the repetition draw threshold.
func (b *ConfigBuilder) WithRepetitionLimit(n int) *ConfigBuilder {
	b.cfg.Rules.RepetitionLimit = n
	return b
}

// WithStorageDir sets the database directory.
func (b *ConfigBuilder) WithStorageDir(dir string) *ConfigBuilder {
	b.cfg.Storage.Dir = dir
	b.cfg.Storage.InMemory = false
	return b
}

// WithInMemoryStorage keeps saved games in memory.
func (b *ConfigBuilder) WithInMemoryStorage() *ConfigBuilder {
	b.cfg.Storage.InMemory = true
	return b
}

// WithNotation sets the output notation.
func (b *ConfigBuilder) WithNotation(n Notation) *ConfigBuilder {
	b.cfg.Output.Notation = n
	return b
}

// WithShowBoard enables board diagrams.
func (b *ConfigBuilder) WithShowBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithSeed sets the random selector seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Match.Seed = seed
	return b
}

// WithMaxPlies sets the self-play ply limit.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Match.MaxPlies = n
	return b
}

// WithWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithCacheEntries sets the perft transposition table size.
func (b *ConfigBuilder) WithCacheEntries(n int) *ConfigBuilder {
	b.cfg.Perft.CacheEntries = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
