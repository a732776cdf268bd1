// Package lcg provides the 64-bit linear-congruential generator shared by
// every language port of the benchmark. Reproducibility is the only
// requirement: identical seeds must yield identical streams across
// implementations, so the constants here are fixed forever.
package lcg

// Knuth's MMIX multiplier/increment, the same pair PCG builds on.
const (
	multiplier = 6364136223846793005
	increment  = 1442695040888963407
)

// Source is a resumable LCG stream. The zero value is a valid stream
// seeded with 0; use New for an explicit seed. Not safe for concurrent
// use; callers own their Source.
type Source struct {
	state uint64
}

// New returns a Source seeded with the given value.
func New(seed uint64) *Source {
	return &Source{state: seed}
}

// Next advances the stream one step and returns the raw 64-bit state.
func (s *Source) Next() uint64 {
	s.state = s.state*multiplier + increment
	return s.state
}

// Int31 advances the stream and returns the top 31 bits of the new state.
// The result is always non-negative.
func (s *Source) Int31() int32 {
	return int32(s.Next() >> 33)
}
