package main

import (
	"errors"
	"reflect"
	"testing"

	"github.com/abarnes1/chess-sub000/internal/config"
	chesserrors "github.com/abarnes1/chess-sub000/internal/errors"
)

// saveRestoreBool sets a bool flag and returns a function restoring it.
// Usage: defer saveRestoreBool(quiet, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestParseMoves(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"spaces", "e2e4 e7e5", []string{"e2e4", "e7e5"}},
		{"commas", "e2e4,e7e5,g1f3", []string{"e2e4", "e7e5", "g1f3"}},
		{"mixed", " e2e4, e7e5\tg1f3 ", []string{"e2e4", "e7e5", "g1f3"}},
		{"promotion", "e7e8q", []string{"e7e8q"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseMoves(tt.in)
			if len(got) == 0 {
				got = nil
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseMoves(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestApplyFlags_AllDefaults(t *testing.T) {
	cfg := config.NewConfig()
	if err := applyFlags(cfg, nil); err != nil {
		t.Fatalf("applyFlags() error = %v", err)
	}
	want := config.NewConfig()
	if cfg.Rules != want.Rules || cfg.Output != want.Output || cfg.Perft != want.Perft ||
		cfg.Match != want.Match || cfg.Storage != want.Storage {
		t.Errorf("flag defaults disagree with config defaults: %+v", cfg)
	}
}

func TestApplyFlags_OnlyExplicit(t *testing.T) {
	defer saveRestoreInt(repetitionLimit, 3)()
	defer saveRestoreInt(workers, 4)()

	cfg := config.NewConfig()
	cfg.Perft.Workers = 2
	if err := applyFlags(cfg, map[string]bool{"repetitions": true}); err != nil {
		t.Fatalf("applyFlags() error = %v", err)
	}
	if cfg.Rules.RepetitionLimit != 3 {
		t.Errorf("RepetitionLimit = %d, want 3", cfg.Rules.RepetitionLimit)
	}
	if cfg.Perft.Workers != 2 {
		t.Errorf("Workers = %d, want 2 (flag not given)", cfg.Perft.Workers)
	}
}

func TestApplyOutputFlags(t *testing.T) {
	t.Run("notation", func(t *testing.T) {
		defer saveRestoreString(notation, "uci")()
		cfg := config.NewConfig()
		if err := applyFlags(cfg, nil); err != nil {
			t.Fatal(err)
		}
		if cfg.Output.Notation != config.UCI {
			t.Errorf("Notation = %v, want uci", cfg.Output.Notation)
		}
	})

	t.Run("unknown notation", func(t *testing.T) {
		defer saveRestoreString(notation, "morse")()
		err := applyFlags(config.NewConfig(), nil)
		if !errors.Is(err, chesserrors.ErrInvalidConfig) {
			t.Errorf("applyFlags() error = %v, want ErrInvalidConfig", err)
		}
	})

	t.Run("no move numbers", func(t *testing.T) {
		defer saveRestoreBool(noNumbers, true)()
		cfg := config.NewConfig()
		if err := applyFlags(cfg, nil); err != nil {
			t.Fatal(err)
		}
		if cfg.Output.KeepMoveNumbers {
			t.Error("KeepMoveNumbers should be false")
		}
	})
}

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		want    int
	}{
		{"default", false, false, 1},
		{"quiet", true, false, 0},
		{"verbose", false, true, 2},
		{"quiet wins", true, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreBool(verbose, tt.verbose)()
			cfg := config.NewConfig()
			if err := applyFlags(cfg, nil); err != nil {
				t.Fatal(err)
			}
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, tt.want)
			}
		})
	}
}

func TestApplyFlags_Invalid(t *testing.T) {
	defer saveRestoreInt(workers, 0)()
	err := applyFlags(config.NewConfig(), nil)
	if !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("applyFlags() error = %v, want ErrInvalidConfig", err)
	}
}
