package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/abarnes1/chess-sub000/internal/config"
	"github.com/abarnes1/chess-sub000/internal/engine"
	"github.com/abarnes1/chess-sub000/internal/errors"
	"github.com/abarnes1/chess-sub000/internal/hashing"
	"github.com/abarnes1/chess-sub000/internal/player"
	"github.com/abarnes1/chess-sub000/internal/storage"
)

// session holds everything one command needs.
type session struct {
	cfg    *config.Config
	fen    string
	moves  []string
	gameID string
	depth  int
}

// commands maps command names to their implementations.
var commands = map[string]func(*session) error{
	"show":     (*session).show,
	"legal":    (*session).legal,
	"play":     (*session).play,
	"perft":    (*session).perft,
	"divide":   (*session).divide,
	"selfplay": (*session).selfplay,
	"save":     (*session).save,
	"load":     (*session).load,
	"list":     (*session).list,
	"delete":   (*session).remove,
}

// commandNames returns the command names in sorted order.
func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// run executes the named command.
func (ss *session) run(name string) error {
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q (want one of %v)", name, commandNames())
	}
	return cmd(ss)
}

func (ss *session) printf(format string, args ...interface{}) {
	fmt.Fprintf(ss.cfg.OutputFile, format, args...)
}

// position builds the starting position and applies the -moves list.
func (ss *session) position() (*engine.GameState, error) {
	fen := ss.fen
	if fen == "" {
		fen = engine.InitialFEN
	}
	s, err := engine.FromFEN(fen, engine.WithRules(ss.cfg.Rules.EngineRules()))
	if err != nil {
		return nil, err
	}
	for i, m := range ss.moves {
		a, err := s.FindAction(m)
		if err != nil {
			return nil, &errors.ActionError{Err: err, Ply: i + 1, Action: m}
		}
		if err := s.ApplyAction(a); err != nil {
			return nil, err
		}
		ss.cfg.Logf(2, "%d: %s", i+1, m)
	}
	s.CheckEnding()
	return s, nil
}

// report prints the position summary shared by several commands.
func (ss *session) report(s *engine.GameState) error {
	if ss.cfg.Output.ShowBoard {
		ss.printf("%s\n", s.BoardString())
	}
	if s.Ply() > 0 {
		moves, err := formatMoveList(s, ss.cfg.Output)
		if err != nil {
			return err
		}
		ss.printf("%s\n", moves)
	}
	ss.printf("FEN: %s\n", s.FEN())
	switch {
	case s.IsOver():
		ss.printf("Result: %s (%s)\n", s.Result(), s.Ending().Message)
	case s.InCheck(s.ActiveColour()):
		ss.printf("%s to move, in check\n", s.ActiveColour())
	default:
		ss.printf("%s to move\n", s.ActiveColour())
	}
	return nil
}

func (ss *session) show() error {
	s, err := ss.position()
	if err != nil {
		return err
	}
	ss.printf("%s\n", s.BoardString())
	ss.printf("FEN: %s\n", s.FEN())
	ss.printf("%s to move\n", s.ActiveColour())
	if e := s.Ending(); e != nil {
		ss.printf("Result: %s (%s)\n", e.Result(), e.Message)
	}
	return nil
}

func (ss *session) legal() error {
	s, err := ss.position()
	if err != nil {
		return err
	}
	var texts []string
	for _, a := range s.LegalActions(s.ActiveColour()) {
		texts = append(texts, actionText(s, a, ss.cfg.Output.Notation))
	}
	sort.Strings(texts)
	for _, t := range texts {
		ss.printf("%s\n", t)
	}
	ss.cfg.Logf(1, "%d legal actions", len(texts))
	return nil
}

func (ss *session) play() error {
	s, err := ss.position()
	if err != nil {
		return err
	}
	return ss.report(s)
}

// nodeCache returns the cache the perft settings ask for, or nil.
func (ss *session) nodeCache() engine.NodeCache {
	switch {
	case ss.cfg.Perft.CacheEntries == 0:
		return nil
	case ss.cfg.Perft.Workers > 1:
		return hashing.NewThreadSafeTable(ss.cfg.Perft.CacheEntries)
	default:
		return hashing.NewTable(ss.cfg.Perft.CacheEntries)
	}
}

func (ss *session) perft() error {
	s, err := ss.position()
	if err != nil {
		return err
	}
	start := time.Now()
	var nodes uint64
	if ss.cfg.Perft.Workers > 1 {
		nodes, err = s.PerftParallel(ss.depth, ss.cfg.Perft.Workers, ss.nodeCache())
		if err != nil {
			return err
		}
	} else if cache := ss.nodeCache(); cache != nil {
		nodes = s.PerftCached(ss.depth, cache)
	} else {
		nodes = s.Perft(ss.depth)
	}
	ss.printf("perft(%d) = %d\n", ss.depth, nodes)
	ss.cfg.Logf(1, "%d nodes in %v", nodes, time.Since(start).Round(time.Millisecond))
	return nil
}

func (ss *session) divide() error {
	s, err := ss.position()
	if err != nil {
		return err
	}
	var total uint64
	for _, e := range s.Divide(ss.depth) {
		ss.printf("%s: %d\n", e.Action, e.Nodes)
		total += e.Nodes
	}
	ss.printf("\nNodes: %d\n", total)
	return nil
}

func (ss *session) selfplay() error {
	s, err := ss.position()
	if err != nil {
		return err
	}
	seed := ss.cfg.Match.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m := player.NewMatch(player.NewRandomSelector(seed), player.NewRandomSelector(seed+1), ss.cfg)
	if _, err := m.Play(s); err != nil {
		return err
	}
	ss.cfg.Logf(1, "Seed %d", seed)
	return ss.report(s)
}

// withStore opens the configured store for the duration of fn.
func (ss *session) withStore(fn func(*storage.Store) error) error {
	st, err := storage.OpenConfig(ss.cfg.Storage)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(st)
}

func (ss *session) save() error {
	s, err := ss.position()
	if err != nil {
		return err
	}
	return ss.withStore(func(st *storage.Store) error {
		g, err := st.SaveState(ss.gameID, s)
		if err != nil {
			return err
		}
		ss.printf("%s\n", g.ID)
		ss.cfg.Logf(1, "Saved %d plies", len(g.Moves))
		return nil
	})
}

func (ss *session) load() error {
	return ss.withStore(func(st *storage.Store) error {
		s, err := st.LoadState(ss.gameID)
		if err != nil {
			return err
		}
		return ss.report(s)
	})
}

func (ss *session) list() error {
	return ss.withStore(func(st *storage.Store) error {
		games, err := st.List()
		if err != nil {
			return err
		}
		for _, g := range games {
			ss.printf("%s  %s  %3d plies  %s\n", g.ID, g.CreatedAt.Format(time.DateTime), len(g.Moves), g.Result)
		}
		ss.cfg.Logf(1, "%d saved games", len(games))
		return nil
	})
}

func (ss *session) remove() error {
	return ss.withStore(func(st *storage.Store) error {
		if err := st.Delete(ss.gameID); err != nil {
			return err
		}
		ss.cfg.Logf(1, "Deleted %s", ss.gameID)
		return nil
	})
}
