package engine

import "testing"

func TestRepetitionLog(t *testing.T) {
	r := NewRepetitionLog()
	if got := r.Record("a"); got != 1 {
		t.Errorf("Record(a) = %d; want 1", got)
	}
	r.Record("b")
	if got := r.Record("a"); got != 2 {
		t.Errorf("second Record(a) = %d; want 2", got)
	}
	if r.Max() != 2 || r.Len() != 2 {
		t.Errorf("Max() = %d, Len() = %d; want 2, 2", r.Max(), r.Len())
	}

	clone := r.Clone()
	r.Forget("a")
	if r.Count("a") != 1 || r.Max() != 1 {
		t.Errorf("after Forget(a): Count = %d, Max = %d; want 1, 1", r.Count("a"), r.Max())
	}
	if clone.Count("a") != 2 || clone.Max() != 2 {
		t.Error("Forget changed the clone")
	}

	r.Forget("b")
	r.Forget("a")
	if r.Len() != 0 || r.Max() != 0 {
		t.Errorf("after forgetting everything: Len = %d, Max = %d", r.Len(), r.Max())
	}
}

// The signature ignores the move counters, so the same position reached
// at different move numbers repeats.
func TestSignatureIgnoresCounters(t *testing.T) {
	a := mustFEN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	b := mustFEN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 37 60")
	if a.Signature() != b.Signature() {
		t.Errorf("signatures differ: %q vs %q", a.Signature(), b.Signature())
	}
	c := mustFEN(t, "4k3/8/8/8/8/8/8/R3K3 b - - 0 1")
	if a.Signature() == c.Signature() {
		t.Error("side to move is not part of the signature")
	}
	if want := "4k3/8/8/8/8/8/8/R3K3 w - -"; a.Signature() != want {
		t.Errorf("Signature() = %q; want %q", a.Signature(), want)
	}
}
