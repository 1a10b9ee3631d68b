// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/abarnes1/chess-sub000/internal/config"
)

var (
	// Position
	startFEN = flag.String("fen", "", "Starting position in FEN (default: standard start)")
	moveList = flag.String("moves", "", "UCI moves to apply first, separated by spaces or commas")
	gameID   = flag.String("id", "", "Saved game ID for load, save and delete")

	// Configuration and streams
	configFile = flag.String("config", "", "YAML configuration file")
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	quiet      = flag.Bool("s", false, "Silent mode: no diagnostics")
	verbose    = flag.Bool("v", false, "Running commentary on each move")

	// Rules
	drawHalfMoves   = flag.Int("drawhalfmoves", 150, "Half-moves without capture or pawn move that end the game")
	repetitionLimit = flag.Int("repetitions", 5, "Occurrences of one position that end the game")

	// Output
	notation   = flag.String("W", "san", "Move notation: san, uci, long")
	showBoard  = flag.Bool("board", false, "Print a board diagram")
	noNumbers  = flag.Bool("nomovenumbers", false, "Don't number move lists")
	lineLength = flag.Int("w", 80, "Maximum line length for move lists (0 = no wrapping)")

	// Perft
	depth   = flag.Int("depth", 3, "Perft and divide depth")
	workers = flag.Int("workers", 1, "Parallel perft workers")
	cache   = flag.Int("cache", 1<<20, "Perft transposition table entries (0 = no cache)")

	// Self-play
	seed     = flag.Int64("seed", 0, "Random self-play seed (0 = from the clock)")
	maxPlies = flag.Int("maxplies", 1000, "Stop self-play after N plies (0 = no limit)")

	// Storage
	dbDir    = flag.String("db", ".chess", "Saved game database directory")
	memoryDB = flag.Bool("memdb", false, "Keep saved games in memory only")

	// Meta
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// explicitFlags returns the names of the flags given on the command line.
// Only those override values read from a configuration file.
func explicitFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags applies command-line flags to the configuration. With a nil
// set every flag is applied.
func applyFlags(cfg *config.Config, set map[string]bool) error {
	given := func(name string) bool {
		return set == nil || set[name]
	}

	applyRulesFlags(cfg, given)
	if err := applyOutputFlags(cfg, given); err != nil {
		return err
	}
	applyPerftFlags(cfg, given)
	applyMatchFlags(cfg, given)
	applyStorageFlags(cfg, given)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return cfg.Validate()
}

// applyRulesFlags configures the draw thresholds.
func applyRulesFlags(cfg *config.Config, given func(string) bool) {
	if given("drawhalfmoves") {
		cfg.Rules.DrawHalfMoves = *drawHalfMoves
	}
	if given("repetitions") {
		cfg.Rules.RepetitionLimit = *repetitionLimit
	}
}

// applyOutputFlags configures notation and layout.
func applyOutputFlags(cfg *config.Config, given func(string) bool) error {
	if given("W") {
		n, err := config.ParseNotation(*notation)
		if err != nil {
			return err
		}
		cfg.Output.Notation = n
	}
	if given("board") {
		cfg.Output.ShowBoard = *showBoard
	}
	if given("nomovenumbers") {
		cfg.Output.KeepMoveNumbers = !*noNumbers
	}
	if given("w") && *lineLength >= 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	return nil
}

// applyPerftFlags configures move-tree counting.
func applyPerftFlags(cfg *config.Config, given func(string) bool) {
	if given("workers") {
		cfg.Perft.Workers = *workers
	}
	if given("cache") {
		cfg.Perft.CacheEntries = *cache
	}
}

// applyMatchFlags configures self-play.
func applyMatchFlags(cfg *config.Config, given func(string) bool) {
	if given("seed") {
		cfg.Match.Seed = *seed
	}
	if given("maxplies") {
		cfg.Match.MaxPlies = *maxPlies
	}
}

// applyStorageFlags configures the saved game store.
func applyStorageFlags(cfg *config.Config, given func(string) bool) {
	if given("db") {
		cfg.Storage.Dir = *dbDir
	}
	if given("memdb") {
		cfg.Storage.InMemory = *memoryDB
	}
}

// parseMoves splits a move list on spaces and commas.
func parseMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
}
