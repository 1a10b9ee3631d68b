package engine

import (
	"errors"
	"testing"

	chesserrors "github.com/abarnes1/chess-sub000/internal/errors"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		kiwipeteFEN,
		position3FEN,
		position4FEN,
		position5FEN,
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"8/8/8/8/8/8/8/4K2k b - - 99 120",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			s := mustFEN(t, fen)
			if got := ToFEN(s); got != fen {
				t.Errorf("ToFEN() = %q; want %q", got, fen)
			}
			if got := s.FEN(); got != fen {
				t.Errorf("FEN() = %q; want %q", got, fen)
			}
		})
	}
}

func TestFENDefaults(t *testing.T) {
	tests := []struct {
		fen  string
		want string
	}{
		{"4k3/8/8/8/8/8/8/4K3", "4k3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"4k3/8/8/8/8/8/8/4K3 b", "4k3/8/8/8/8/8/8/4K3 b - - 0 1"},
		{"r3k2r/8/8/8/8/8/8/R3K2R w Kk", "r3k2r/8/8/8/8/8/8/R3K2R w Kk - 0 1"},
		{"4k3/8/8/8/4P3/8/8/4K3 b - e3", "4k3/8/8/8/4P3/8/8/4K3 b - e3 0 1"},
		{"4k3/8/8/8/8/8/8/4K3 w - - 12", "4k3/8/8/8/8/8/8/4K3 w - - 12 1"},
	}
	for _, tt := range tests {
		t.Run(tt.fen, func(t *testing.T) {
			if got := ToFEN(mustFEN(t, tt.fen)); got != tt.want {
				t.Errorf("ToFEN() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestFENErrors(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantField string
	}{
		{"empty", "", ""},
		{"too many fields", InitialFEN + " extra", ""},
		{"too few ranks", "8/8/8 w - - 0 1", "placement"},
		{"too many ranks", "8/8/8/8/8/8/8/8/8 w - - 0 1", "placement"},
		{"rank too long", "ppppppppp/8/8/8/8/8/8/8 w - - 0 1", "placement"},
		{"rank too short", "7/8/8/8/8/8/8/8 w - - 0 1", "placement"},
		{"digit nine", "9/8/8/8/8/8/8/8 w - - 0 1", "placement"},
		{"unknown piece", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1", "placement"},
		{"bad side", "8/8/8/8/8/8/8/4K3 x - - 0 1", "side"},
		{"bad castling", "8/8/8/8/8/8/8/4K3 w KQkX - 0 1", "castling"},
		{"repeated castling letter", "8/8/8/8/8/8/8/4K3 w KK - 0 1", "castling"},
		{"en passant on rank five", "8/8/8/8/8/8/8/4K3 w - e5 0 1", "en passant"},
		{"en passant off the board", "8/8/8/8/8/8/8/4K3 w - z3 0 1", "en passant"},
		{"negative clock", "8/8/8/8/8/8/8/4K3 w - - -1 1", "halfmove clock"},
		{"text clock", "8/8/8/8/8/8/8/4K3 w - - abc 1", "halfmove clock"},
		{"zero move number", "8/8/8/8/8/8/8/4K3 w - - 0 0", "fullmove number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := FromFEN(tt.fen)
			if err == nil {
				t.Fatalf("FromFEN(%q) = %s; want error", tt.fen, ToFEN(s))
			}
			if !errors.Is(err, chesserrors.ErrInvalidFEN) {
				t.Errorf("error = %v; want ErrInvalidFEN", err)
			}
			var fenErr *chesserrors.FENError
			if !errors.As(err, &fenErr) {
				if tt.wantField != "" {
					t.Errorf("error %v is not a FENError", err)
				}
				return
			}
			if fenErr.Field != tt.wantField {
				t.Errorf("Field = %q; want %q", fenErr.Field, tt.wantField)
			}
		})
	}
}

func TestFENAfterActions(t *testing.T) {
	s := NewStandardGame()
	steps := []struct {
		move string
		want string
	}{
		{"e2e4", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"},
		{"c7c5", "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2"},
		{"g1f3", "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2"},
	}
	for _, step := range steps {
		play(t, s, step.move)
		if got := s.FEN(); got != step.want {
			t.Errorf("after %s FEN = %q; want %q", step.move, got, step.want)
		}
	}
	if got := s.StartFEN(); got != InitialFEN {
		t.Errorf("StartFEN() = %q; want the initial position", got)
	}
}
