package xorsquare

import (
	"math"
	"math/bits"
)

// BetweenUint64 returns a uniformly distributed integer in [lo, hi].
// Both bounds are inclusive, and every value in the range is exactly
// equally likely regardless of whether the range size divides 2⁶⁴.
//
// BetweenUint64 panics if lo > hi.
//
// When lo == hi the single possible value is returned without
// consuming a draw; otherwise the call consumes one draw, plus more
// only in the rare rejection case. Callers replaying sequences can
// rely on both counts.
func (r *Rng) BetweenUint64(lo, hi uint64) uint64 {
	if lo > hi {
		panic("xorsquare: BetweenUint64 called with lo > hi")
	}
	if lo == hi {
		return lo
	}
	span := hi - lo + 1
	if span == 0 {
		// The full 64-bit range wrapped span to zero; a raw word is
		// already the answer.
		return r.Uint64()
	}

	// Multiply-and-reject: spread a raw word across span buckets with
	// a widening multiply, rejecting the few words that would land in
	// a partial bucket. The fraction below the threshold is less than
	// span/2⁶⁴, so resampling is almost never needed.
	h, l := bits.Mul64(r.Uint64(), span)
	if l < span {
		thresh := -span % span
		for l < thresh {
			h, l = bits.Mul64(r.Uint64(), span)
		}
	}
	return lo + h
}

// BetweenInt64 returns a uniformly distributed integer in [lo, hi].
// Both bounds are inclusive.
//
// BetweenInt64 panics if lo > hi.
func (r *Rng) BetweenInt64(lo, hi int64) int64 {
	if lo > hi {
		panic("xorsquare: BetweenInt64 called with lo > hi")
	}
	// Flipping the sign bit maps int64 order onto uint64 order.
	const signBit = 1 << 63
	u := r.BetweenUint64(uint64(lo)^signBit, uint64(hi)^signBit)
	return int64(u ^ signBit)
}

// BetweenUint32 returns a uniformly distributed integer in [lo, hi].
// Both bounds are inclusive. It draws through the 64-bit sampler over
// the widened range, so it consumes draws exactly as BetweenUint64
// does.
//
// BetweenUint32 panics if lo > hi.
func (r *Rng) BetweenUint32(lo, hi uint32) uint32 {
	if lo > hi {
		panic("xorsquare: BetweenUint32 called with lo > hi")
	}
	return uint32(r.BetweenUint64(uint64(lo), uint64(hi)))
}

// BetweenInt32 returns a uniformly distributed integer in [lo, hi].
// Both bounds are inclusive.
//
// BetweenInt32 panics if lo > hi.
func (r *Rng) BetweenInt32(lo, hi int32) int32 {
	if lo > hi {
		panic("xorsquare: BetweenInt32 called with lo > hi")
	}
	return int32(r.BetweenInt64(int64(lo), int64(hi)))
}

// Bernoulli returns true with probability approximately p, consuming
// one draw. Values p <= 0 (and NaN) never return true; values p >= 1
// always do.
func (r *Rng) Bernoulli(p float64) bool {
	// Build a float strictly inside (0, 1) whose distribution is
	// uniform at full double precision: the trailing zero count of
	// the draw supplies the geometric exponent and the high bits
	// supply the mantissa.
	x := r.Uint64()
	e := uint64(1022 - bits.TrailingZeros64(x))
	t := math.Float64frombits(e<<52 + x>>12)
	return t < p
}
