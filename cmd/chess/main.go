// chess is a command-line front end to the rules engine: it shows and
// validates positions, lists legal moves, counts move trees, plays random
// games and keeps saved games.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abarnes1/chess-sub000/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	closeLog := setupLogFile(cfg)
	defer closeLog()
	closeOutput := setupOutputFile(cfg)
	defer closeOutput()

	name := "show"
	if flag.NArg() > 0 {
		name = flag.Arg(0)
	}
	ss := &session{
		cfg:    cfg,
		fen:    *startFEN,
		moves:  parseMoves(*moveList),
		gameID: *gameID,
		depth:  *depth,
	}
	if err := ss.run(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeOutput()
		closeLog()
		os.Exit(1)
	}
}

// loadConfig reads the -config file, if any, and applies the flags given on
// the command line over it.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	set := explicitFlags()
	if *configFile != "" {
		loaded, err := config.LoadFile(*configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		set = nil
	}
	if err := applyFlags(cfg, set); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogFile redirects diagnostics to the -l file.
func setupLogFile(cfg *config.Config) func() {
	if *logFile == "" {
		return func() {}
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
	return closer(file)
}

// setupOutputFile redirects output to the -o file.
func setupOutputFile(cfg *config.Config) func() {
	if *outputFile == "" {
		return func() {}
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
	return closer(file)
}

// closer returns an idempotent close function for c.
func closer(c io.Closer) func() {
	closed := false
	return func() {
		if !closed {
			closed = true
			c.Close()
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "chess version %s\n\n", programVersion)
	fmt.Fprintf(os.Stderr, "Usage: chess [options] [command]\n\n")
	fmt.Fprintf(os.Stderr, "Commands: %s (default: show)\n\n", strings.Join(commandNames(), ", "))
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
