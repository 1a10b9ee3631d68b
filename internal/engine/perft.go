package engine

import (
	"sort"

	"github.com/abarnes1/chess-sub000/internal/worker"
)

// NodeCache stores perft node counts by position key and depth. Both
// hashing.Table and hashing.ThreadSafeTable satisfy it.
type NodeCache interface {
	Lookup(key uint64, depth int) (uint64, bool)
	Store(key uint64, depth int, nodes uint64)
}

// Perft counts the leaf nodes of the legal move tree to depth. Each
// promotion counts once per promotion piece. Draw rules are ignored.
func (s *GameState) Perft(depth int) uint64 {
	return s.perft(depth, nil)
}

// PerftCached is Perft with a transposition cache.
func (s *GameState) PerftCached(depth int, cache NodeCache) uint64 {
	return s.perft(depth, cache)
}

func (s *GameState) perft(depth int, cache NodeCache) uint64 {
	if depth <= 0 {
		return 1
	}
	actions := expandPromotions(s.LegalActions(s.active))
	if depth == 1 {
		return uint64(len(actions))
	}

	var key uint64
	if cache != nil {
		key = s.ZobristKey()
		if n, ok := cache.Lookup(key, depth); ok {
			return n
		}
	}

	var nodes uint64
	for _, a := range actions {
		s.apply(a)
		nodes += s.perft(depth-1, cache)
		s.undo()
	}
	if cache != nil {
		cache.Store(key, depth, nodes)
	}
	return nodes
}

// DivideEntry is the node count below one root action.
type DivideEntry struct {
	Action string
	Nodes  uint64
}

// Divide returns the perft count below each root action, sorted by UCI text.
func (s *GameState) Divide(depth int) []DivideEntry {
	var out []DivideEntry
	for _, a := range expandPromotions(s.LegalActions(s.active)) {
		s.apply(a)
		out = append(out, DivideEntry{Action: a.UCI(), Nodes: s.perft(depth-1, nil)})
		s.undo()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Action < out[j].Action })
	return out
}

// PerftParallel splits Perft across workers goroutines, one root action per
// job. Each job searches its own clone; cache may be nil and must be safe
// for concurrent use otherwise.
func (s *GameState) PerftParallel(depth, workers int, cache NodeCache) (uint64, error) {
	if depth <= 1 {
		return s.Perft(depth), nil
	}

	type job struct {
		state  *GameState
		action string
	}
	var jobs []job
	for _, a := range expandPromotions(s.LegalActions(s.active)) {
		jobs = append(jobs, job{state: s.Clone(), action: a.UCI()})
	}

	counts, err := worker.Map(jobs, workers, func(j job) (uint64, error) {
		a, err := j.state.FindAction(j.action)
		if err != nil {
			return 0, err
		}
		j.state.apply(a)
		return j.state.perft(depth-1, cache), nil
	})
	if err != nil {
		return 0, err
	}

	var total uint64
	for _, n := range counts {
		total += n
	}
	return total, nil
}
