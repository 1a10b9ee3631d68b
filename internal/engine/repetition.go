package engine

import "maps"

// RepetitionLog counts how often each position signature has been reached.
// A signature is the first four FEN fields, so move counters do not make two
// otherwise identical positions differ.
type RepetitionLog struct {
	counts map[string]int
	max    int
}

// NewRepetitionLog creates an empty log.
func NewRepetitionLog() *RepetitionLog {
	return &RepetitionLog{counts: make(map[string]int)}
}

// Record counts one more occurrence of sig and returns the new count.
func (r *RepetitionLog) Record(sig string) int {
	r.counts[sig]++
	n := r.counts[sig]
	if n > r.max {
		r.max = n
	}
	return n
}

// Forget reverses one Record of sig.
func (r *RepetitionLog) Forget(sig string) {
	n := r.counts[sig]
	if n <= 1 {
		delete(r.counts, sig)
	} else {
		r.counts[sig] = n - 1
	}
	if n == r.max {
		r.max = 0
		for _, c := range r.counts {
			r.max = max(r.max, c)
		}
	}
}

// Count returns how often sig has been recorded.
func (r *RepetitionLog) Count(sig string) int {
	return r.counts[sig]
}

// Max returns the highest count of any signature.
func (r *RepetitionLog) Max() int {
	return r.max
}

// Len returns the number of distinct signatures.
func (r *RepetitionLog) Len() int {
	return len(r.counts)
}

// Clone returns an independent copy.
func (r *RepetitionLog) Clone() *RepetitionLog {
	return &RepetitionLog{counts: maps.Clone(r.counts), max: r.max}
}
