package engine

import (
	"sort"
	"testing"

	"github.com/abarnes1/chess-sub000/internal/chess"
)

// Well-known perft positions.
const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

func sq(s string) chess.Position {
	return chess.MustParsePosition(s)
}

func mustFEN(t testing.TB, fen string) *GameState {
	t.Helper()
	s, err := FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q) error: %v", fen, err)
	}
	return s
}

// place adds pieces described as "Kc4" (White) or "pb4" (Black).
func place(t testing.TB, s *GameState, pieces ...string) {
	t.Helper()
	for _, desc := range pieces {
		colour := chess.White
		if desc[0] >= 'a' && desc[0] <= 'z' {
			colour = chess.Black
		}
		kind := chess.KindFromLetter(desc[0])
		if _, err := s.AddPiece(kind, colour, sq(desc[1:])); err != nil {
			t.Fatalf("AddPiece(%s) error: %v", desc, err)
		}
	}
}

// play applies moves given in UCI text.
func play(t testing.TB, s *GameState, moves ...string) {
	t.Helper()
	for _, m := range moves {
		a, err := s.FindAction(m)
		if err != nil {
			t.Fatalf("FindAction(%q) in %s: %v", m, ToFEN(s), err)
		}
		if err := s.ApplyAction(a); err != nil {
			t.Fatalf("ApplyAction(%q) error: %v", m, err)
		}
	}
}

// ucis returns the sorted UCI texts of actions.
func ucis(actions []Action) []string {
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.UCI())
	}
	sort.Strings(out)
	return out
}

func ofKind(actions []Action, kind ActionKind) []Action {
	var out []Action
	for _, a := range actions {
		if a.Kind() == kind {
			out = append(out, a)
		}
	}
	return out
}
