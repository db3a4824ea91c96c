package xorsquare

import "math/rand"

// Source adapts an Rng to math/rand.Source64, so the generator can
// drive rand.New and everything built on it. The core does not depend
// on math/rand; this adapter is the only coupling point.
type Source struct {
	rng *Rng
}

var _ rand.Source64 = (*Source)(nil)

// NewSource returns a Source drawing from r. The Rng is shared, not
// copied: draws through the Source advance r.
func NewSource(r *Rng) *Source {
	return &Source{rng: r}
}

// Uint64 returns the next raw word.
func (s *Source) Uint64() uint64 {
	return s.rng.Uint64()
}

// Int63 returns the high 63 bits of the next raw word as a
// non-negative int64.
func (s *Source) Int63() int64 {
	return int64(s.rng.Uint64() >> 1)
}

// Seed resets the underlying generator as if by FromUint64.
func (s *Source) Seed(seed int64) {
	*s.rng = *FromUint64(uint64(seed))
}
