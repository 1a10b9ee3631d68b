package chess

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	chesserrors "github.com/abarnes1/chess-sub000/internal/errors"
)

func sq(s string) Position {
	return MustParsePosition(s)
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for i := 0; i < NumSquares; i++ {
			pos := PositionFromIndex(i)
			if got := b.At(pos); got != nil {
				t.Errorf("At(%s) = %v; want nil", pos, got)
			}
			if !b.IsEmpty(pos) {
				t.Errorf("IsEmpty(%s) = false; want true", pos)
			}
		}
	})

	t.Run("off-board squares are not empty", func(t *testing.T) {
		if b.IsEmpty(Pos('i', '1')) {
			t.Error("IsEmpty(i1) = true; want false")
		}
		if got := b.At(Pos('a', '9')); got != nil {
			t.Errorf("At(a9) = %v; want nil", got)
		}
	})
}

func TestBoardAdd(t *testing.T) {
	tests := []struct {
		name    string
		setup   []*Piece
		add     *Piece
		wantErr error
	}{
		{"empty square", nil, NewPiece(Pawn, White, sq("e4")), nil},
		{"occupied square", []*Piece{NewPiece(Rook, Black, sq("e4"))}, NewPiece(Pawn, White, sq("e4")), chesserrors.ErrSquareOccupied},
		{"off the board", nil, NewPiece(Queen, White, Pos('z', '9')), chesserrors.ErrInvalidPosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			for _, p := range tt.setup {
				if err := b.Add(p); err != nil {
					t.Fatalf("setup Add(%v) error: %v", p, err)
				}
			}
			err := b.Add(tt.add)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Add(%v) error = %v; want %v", tt.add, err, tt.wantErr)
			}
			if tt.wantErr == nil && b.At(tt.add.Position) != tt.add {
				t.Errorf("At(%s) does not return the added piece", tt.add.Position)
			}
		})
	}
}

func TestBoardMoveKeepsPositionInSync(t *testing.T) {
	b := NewBoard()
	knight := NewPiece(Knight, White, sq("g1"))
	if err := b.Add(knight); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	if err := b.Move(sq("g1"), sq("f3")); err != nil {
		t.Fatalf("Move(g1, f3) error: %v", err)
	}
	if knight.Position != sq("f3") {
		t.Errorf("knight.Position = %s; want f3", knight.Position)
	}
	if b.At(sq("f3")) != knight || !b.IsEmpty(sq("g1")) {
		t.Error("board slots do not reflect the move")
	}

	if err := b.Move(sq("g1"), sq("h3")); !errors.Is(err, chesserrors.ErrEmptySquare) {
		t.Errorf("Move from empty square error = %v; want ErrEmptySquare", err)
	}

	if err := b.Add(NewPiece(Pawn, Black, sq("e5"))); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if err := b.Move(sq("f3"), sq("e5")); !errors.Is(err, chesserrors.ErrSquareOccupied) {
		t.Errorf("Move onto occupied square error = %v; want ErrSquareOccupied", err)
	}
}

func TestBoardRemove(t *testing.T) {
	b := NewBoard()
	rook := NewPiece(Rook, Black, sq("a8"))
	if err := b.Add(rook); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	if got := b.Remove(sq("a8")); got != rook {
		t.Errorf("Remove(a8) = %v; want the rook", got)
	}
	if got := b.Remove(sq("a8")); got != nil {
		t.Errorf("second Remove(a8) = %v; want nil", got)
	}
	if rook.Position != sq("a8") {
		t.Errorf("removed piece Position = %s; want a8", rook.Position)
	}
}

func TestBoardQueries(t *testing.T) {
	b := NewBoard()
	pieces := []*Piece{
		NewPiece(King, White, sq("e1")),
		NewPiece(Queen, White, sq("d1")),
		NewPiece(King, Black, sq("e8")),
		NewPiece(Pawn, Black, sq("a7")),
	}
	for _, p := range pieces {
		if err := b.Add(p); err != nil {
			t.Fatalf("Add(%v) error: %v", p, err)
		}
	}

	if got := len(b.Pieces(White)); got != 2 {
		t.Errorf("len(Pieces(White)) = %d; want 2", got)
	}
	if got := len(b.AllPieces()); got != 4 {
		t.Errorf("len(AllPieces()) = %d; want 4", got)
	}
	if got := b.King(Black); got != pieces[2] {
		t.Errorf("King(Black) = %v; want black king on e8", got)
	}
	if got := NewBoard().King(White); got != nil {
		t.Errorf("King(White) on empty board = %v; want nil", got)
	}
	if got, want := b.Placement(), "4k3/p7/8/8/8/8/8/3QK3"; got != want {
		t.Errorf("Placement() = %q; want %q", got, want)
	}
}

func TestBoardCopy(t *testing.T) {
	original := NewBoard()
	if err := original.Add(NewPiece(Bishop, White, sq("c1"))); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	copied := original.Copy()
	if diff := cmp.Diff(original.Snapshot(), copied.Snapshot()); diff != "" {
		t.Errorf("Copy() snapshot mismatch (-original +copy):\n%s", diff)
	}

	t.Run("modifications are independent", func(t *testing.T) {
		if err := copied.Move(sq("c1"), sq("g5")); err != nil {
			t.Fatalf("Move error: %v", err)
		}
		if original.At(sq("c1")) == nil {
			t.Error("original lost its bishop after the copy moved")
		}
		if original.At(sq("c1")).Position != sq("c1") {
			t.Errorf("original bishop Position = %s; want c1", original.At(sq("c1")).Position)
		}
	})
}

func TestBoardString(t *testing.T) {
	b := NewBoard()
	if err := b.Add(NewPiece(King, White, sq("a1"))); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	want := "8 . . . . . . . .\n" +
		"7 . . . . . . . .\n" +
		"6 . . . . . . . .\n" +
		"5 . . . . . . . .\n" +
		"4 . . . . . . . .\n" +
		"3 . . . . . . . .\n" +
		"2 . . . . . . . .\n" +
		"1 K . . . . . . .\n" +
		"  a b c d e f g h\n"
	if got := b.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
