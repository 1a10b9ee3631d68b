package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/abarnes1/chess-sub000/internal/config"
	"github.com/abarnes1/chess-sub000/internal/engine"
	"github.com/abarnes1/chess-sub000/internal/errors"
	"github.com/abarnes1/chess-sub000/internal/testutil"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	st, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSaveAndLoadState(t *testing.T) {
	st := newStore(t)
	s := engine.NewStandardGame()
	testutil.MustPlay(t, s, "e2e4", "e7e5", "g1f3", "b8c6")

	saved, err := st.SaveState("", s)
	testutil.AssertNoError(t, err)
	if _, err := uuid.Parse(saved.ID); err != nil {
		t.Fatalf("ID %q is not a UUID: %v", saved.ID, err)
	}
	testutil.AssertEqual(t, saved.Moves, []string{"e2e4", "e7e5", "g1f3", "b8c6"})
	testutil.AssertEqual(t, saved.StartFEN, engine.InitialFEN)
	testutil.AssertEqual(t, saved.Result, "*")

	restored, err := st.LoadState(saved.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertFEN(t, restored, s.FEN())
	testutil.AssertEqual(t, restored.Ply(), 4)
	testutil.AssertEqual(t, restored.MoveList(), s.MoveList())
}

func TestRestoreRepetitionLog(t *testing.T) {
	st := newStore(t)
	s := engine.NewStandardGame()
	cycle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for i := 0; i < 2; i++ {
		testutil.MustPlay(t, s, cycle...)
	}

	saved, err := st.SaveState("", s)
	testutil.AssertNoError(t, err)
	restored, err := st.LoadState(saved.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, restored.RepetitionCount(), s.RepetitionCount())

	// two more cycles plus one move reach the fifth occurrence
	testutil.MustPlay(t, restored, cycle...)
	testutil.MustPlay(t, restored, cycle...)
	testutil.MustPlay(t, restored, "g1f3")
	testutil.AssertTrue(t, restored.IsOver(), "restored game missed the repetition draw")
}

func TestFinishedGame(t *testing.T) {
	st := newStore(t)
	s := engine.NewStandardGame()
	testutil.MustPlay(t, s, "f2f3", "e7e5", "g2g4", "d8h4")

	saved, err := st.SaveState("", s)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, saved.Result, "0-1")
	testutil.AssertEqual(t, saved.Ending, "Checkmate: Black wins")

	restored, err := st.LoadState(saved.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, restored.Result(), "0-1")
}

func TestCustomRulesSurvive(t *testing.T) {
	st := newStore(t)
	rules := engine.Rules{DrawHalfMoves: 10, RepetitionLimit: 3}
	s := testutil.MustState(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", engine.WithRules(rules))
	testutil.MustPlay(t, s, "a1a2")

	saved, err := st.SaveState("", s)
	testutil.AssertNoError(t, err)
	restored, err := st.LoadState(saved.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, restored.Rules(), rules)
}

func TestSaveStateUpdates(t *testing.T) {
	st := newStore(t)
	s := engine.NewStandardGame()
	first, err := st.SaveState("", s)
	testutil.AssertNoError(t, err)

	time.Sleep(time.Millisecond)
	testutil.MustPlay(t, s, "d2d4")
	second, err := st.SaveState(first.ID, s)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, second.ID, first.ID)
	testutil.AssertTrue(t, second.CreatedAt.Equal(first.CreatedAt), "CreatedAt changed on update")
	testutil.AssertTrue(t, second.UpdatedAt.After(first.UpdatedAt), "UpdatedAt not advanced")

	loaded, err := st.Load(first.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, loaded.Moves, []string{"d2d4"})

	_, err = st.SaveState(uuid.NewString(), s)
	testutil.AssertErrorIs(t, err, errors.ErrGameNotFound)
}

func TestLoadMissing(t *testing.T) {
	st := newStore(t)
	tests := []struct {
		name string
		id   string
	}{
		{"unknown id", uuid.NewString()},
		{"not a uuid", "game-1"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := st.Load(tt.id)
			testutil.AssertErrorIs(t, err, errors.ErrGameNotFound)
		})
	}
}

func TestListAndDelete(t *testing.T) {
	st := newStore(t)
	var ids []string
	for _, fen := range []string{engine.InitialFEN, "4k3/8/8/8/8/8/8/4K2R w K - 0 1", "8/8/8/8/8/8/8/K6k b - - 3 40"} {
		g, err := st.SaveState("", testutil.MustState(t, fen))
		testutil.AssertNoError(t, err)
		ids = append(ids, g.ID)
		time.Sleep(time.Millisecond)
	}

	games, err := st.List()
	testutil.AssertNoError(t, err)
	var listed []string
	for _, g := range games {
		listed = append(listed, g.ID)
	}
	testutil.AssertEqual(t, listed, ids, "List() should return games oldest first")

	testutil.AssertNoError(t, st.Delete(ids[1]))
	testutil.AssertErrorIs(t, st.Delete(ids[1]), errors.ErrGameNotFound)
	games, err = st.List()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(games), 2)
}

func TestRestoreBadMoves(t *testing.T) {
	g := &SavedGame{ID: "x", StartFEN: engine.InitialFEN, Moves: []string{"e2e4", "e2e4"}}
	_, err := g.Restore()
	testutil.AssertErrorIs(t, err, errors.ErrIllegalAction)

	g = &SavedGame{ID: "y", StartFEN: "not a fen"}
	_, err = g.Restore()
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
}

func TestOpenConfig(t *testing.T) {
	st, err := OpenConfig(config.StorageConfig{InMemory: true})
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, st.Close())

	dir := t.TempDir()
	st, err = OpenConfig(config.StorageConfig{Dir: dir})
	testutil.AssertNoError(t, err)
	g, err := st.SaveState("", engine.NewStandardGame())
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, st.Close())

	st, err = Open(dir)
	testutil.AssertNoError(t, err)
	defer st.Close()
	_, err = st.Load(g.ID)
	testutil.AssertNoError(t, err, "game lost across reopen")

	_, err = OpenConfig(config.StorageConfig{})
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}
