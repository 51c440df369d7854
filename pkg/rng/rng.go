package rng

const (
	lcgMul = 1664525
	lcgInc = 1013904223
	lcgMod = 1 << 31
)

// Source is a deterministic linear congruential generator. Two sources
// built from the same seed and stepped the same number of times produce
// identical sequences, which is what makes generation runs reproducible.
type Source struct {
	state int64
}

// New creates a deterministic source from the provided seed. Any int64
// seed is accepted; it is reduced into [0, 2^31) before use.
func New(seed int64) *Source {
	s := seed % lcgMod
	if s < 0 {
		s += lcgMod
	}
	return &Source{state: s}
}

// Next advances the generator and returns a float64 in [0, 1).
func (s *Source) Next() float64 {
	s.state = (s.state*lcgMul + lcgInc) % lcgMod
	return float64(s.state) / float64(lcgMod)
}

// IntN returns a random int in [0, n). n must be positive.
func (s *Source) IntN(n int) int {
	return int(s.Next() * float64(n))
}

// Range returns a random int in [lo, hi] inclusive.
func (s *Source) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.IntN(hi-lo+1)
}

// Chance reports true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.Next() < p
}

// State exposes the raw generator state for inspection in tests.
func (s *Source) State() int64 { return s.state }

// Shuffle permutes xs in place using the Fisher-Yates walk driven by src.
func Shuffle[T any](src *Source, xs []T) {
	for i := len(xs) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}
