package testutil

import (
	"sort"
	"testing"

	"github.com/abarnes1/chess-sub000/internal/engine"
)

// MustState decodes a FEN string and calls t.Fatal on failure.
func MustState(t testing.TB, fen string, opts ...engine.Option) *engine.GameState {
	t.Helper()
	s, err := engine.FromFEN(fen, opts...)
	if err != nil {
		t.Fatalf("FromFEN(%q) error: %v", fen, err)
	}
	return s
}

// MustPlay applies actions given in UCI text ("e2e4", "e7e8q") and calls
// t.Fatal on the first one that is not legal.
func MustPlay(t testing.TB, s *engine.GameState, moves ...string) {
	t.Helper()
	for _, m := range moves {
		a, err := s.FindAction(m)
		if err != nil {
			t.Fatalf("FindAction(%q) in %s: %v", m, s.FEN(), err)
		}
		if err := s.ApplyAction(a); err != nil {
			t.Fatalf("ApplyAction(%q) error: %v", m, err)
		}
	}
}

// UCIs returns the sorted UCI texts of actions.
func UCIs(actions []engine.Action) []string {
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.UCI())
	}
	sort.Strings(out)
	return out
}

// AssertFEN fails if the state's FEN differs from want.
func AssertFEN(t testing.TB, s *engine.GameState, want string) {
	t.Helper()
	if got := s.FEN(); got != want {
		t.Errorf("FEN = %q, want %q", got, want)
	}
}
