package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/abarnes1/chess-sub000/internal/chess"
)

func TestLoneKingHasEightMoves(t *testing.T) {
	s := NewGameState()
	place(t, s, "Kc4")

	got := ucis(s.LegalActions(chess.White))
	want := []string{"c4b3", "c4b4", "c4b5", "c4c3", "c4c5", "c4d3", "c4d4", "c4d5"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("legal actions mismatch (-want +got):\n%s", diff)
	}
}

func TestRookStopsAtBlockers(t *testing.T) {
	s := NewGameState()
	place(t, s, "Rc4", "pb4", "pc2", "pc5", "pf4")

	actions := s.LegalActions(chess.White)
	moves := ucis(ofKind(actions, MoveAction))
	captures := ucis(ofKind(actions, CaptureAction))

	if diff := cmp.Diff([]string{"c4c3", "c4d4", "c4e4"}, moves); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"c4b4", "c4c2", "c4c5", "c4f4"}, captures); diff != "" {
		t.Errorf("captures mismatch (-want +got):\n%s", diff)
	}
	if len(actions) != 7 {
		t.Errorf("len(actions) = %d; want 7", len(actions))
	}
}

func TestGenerateActions(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		want   []string
	}{
		{
			name:   "knight in the corner",
			fen:    "8/8/8/8/8/8/8/N7 w - - 0 1",
			square: "a1",
			want:   []string{"a1b3", "a1c2"},
		},
		{
			name:   "knight jumps over pieces",
			fen:    "8/8/8/8/8/PPP5/PNP5/PPP5 w - - 0 1",
			square: "b2",
			want:   []string{"b2a4", "b2c4", "b2d1", "b2d3"},
		},
		{
			name:   "pawn double step from start rank",
			fen:    "8/8/8/8/8/8/4P3/8 w - - 0 1",
			square: "e2",
			want:   []string{"e2e3", "e2e4"},
		},
		{
			name:   "pawn double step blocked on the far square",
			fen:    "8/8/8/8/4n3/8/4P3/8 w - - 0 1",
			square: "e2",
			want:   []string{"e2e3"},
		},
		{
			name:   "pawn blocked by an enemy piece ahead",
			fen:    "8/8/8/8/8/4n3/4P3/8 w - - 0 1",
			square: "e2",
			want:   nil,
		},
		{
			name:   "pawn captures diagonally only onto enemies",
			fen:    "8/8/8/3p1P2/4P3/8/8/8 w - - 0 1",
			square: "e4",
			want:   []string{"e4d5", "e4e5"},
		},
		{
			name:   "black pawn moves down the board",
			fen:    "8/3p4/8/8/8/8/8/8 b - - 0 1",
			square: "d7",
			want:   []string{"d7d5", "d7d6"},
		},
		{
			name:   "bishop slides until blocked",
			fen:    "8/8/8/8/8/2P5/1B6/8 w - - 0 1",
			square: "b2",
			want:   []string{"b2a1", "b2a3", "b2c1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustFEN(t, tt.fen)
			p := s.PieceAt(sq(tt.square))
			if p == nil {
				t.Fatalf("no piece on %s", tt.square)
			}
			got := ucis(GenerateActions(s, p))
			if len(got) == 0 {
				got = nil
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("actions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPawnPromotionGeneration(t *testing.T) {
	s := mustFEN(t, "3r4/4P3/8/8/8/8/8/8 w - - 0 1")
	actions := GenerateActions(s, s.PieceAt(sq("e7")))

	if len(actions) != 2 {
		t.Fatalf("len(actions) = %d; want 2", len(actions))
	}
	for _, a := range actions {
		if !IsUnresolvedPromotion(a) {
			t.Errorf("%s is not an unresolved promotion", a.Notation())
		}
	}
	if got := len(ofKind(actions, PromoteCaptureAction)); got != 1 {
		t.Errorf("promote-capture count = %d; want 1", got)
	}
	if got := len(expandPromotions(actions)); got != 8 {
		t.Errorf("expanded promotions = %d; want 8", got)
	}
}

func TestThreatMap(t *testing.T) {
	b := chess.NewBoard()
	rook := chess.NewPiece(chess.Rook, chess.Black, sq("a1"))
	pawn := chess.NewPiece(chess.Pawn, chess.Black, sq("e5"))
	blocker := chess.NewPiece(chess.Knight, chess.White, sq("a4"))
	for _, p := range []*chess.Piece{rook, pawn, blocker} {
		if err := b.Add(p); err != nil {
			t.Fatalf("Add error: %v", err)
		}
	}

	threats := ThreatsAgainst(b, chess.White)
	covered := []string{"a2", "a3", "a4", "b1", "h1", "d4", "f4"}
	for _, s := range covered {
		if !threats.Covers(sq(s)) {
			t.Errorf("Covers(%s) = false; want true", s)
		}
	}
	uncovered := []string{"a5", "e4", "e6", "a1"}
	for _, s := range uncovered {
		if threats.Covers(sq(s)) {
			t.Errorf("Covers(%s) = true; want false", s)
		}
	}
	if got := len(threats.Squares()); got != 3+7+2 {
		t.Errorf("len(Squares()) = %d; want 12", got)
	}
}
