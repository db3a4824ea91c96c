// Package xorsquare implements a fast non-cryptographic pseudorandom
// number generator with 128 bits of state and a period of 2¹²⁸−1.
//
// The state transition is an invertible xorshift/rotate step over the
// full 128-bit state; each output word is tempered by folding the two
// halves of a 128-bit widening square. The transition visits every
// non-zero state before repeating, and the zero state is unreachable
// from any valid seed.
//
// The generator is deterministic and statistically strong, but it is
// reversible from observed output. It must never be used where an
// adversary benefits from predicting future or past values; use
// crypto/rand for anything security sensitive.
package xorsquare

import "math/bits"

// Rng is a pseudorandom number generator. It is a plain value: copying
// one yields an independent generator that replays the same sequence
// from the point of the copy.
//
// An Rng is not safe for unsynchronized concurrent use. Give each
// goroutine its own generator (see Split and the package-level
// functions), or guard a shared one externally.
type Rng struct {
	x, y uint64
}

// New returns a generator with exactly the given state words. It is
// intended for tests and for restoring a state captured with State;
// to initialize from a small or weak seed, use FromUint64, which
// mixes its argument first.
//
// New panics if both words are zero, the one state the transition
// cannot leave.
func New(x, y uint64) *Rng {
	if x|y == 0 {
		panic("xorsquare: zero state")
	}
	return &Rng{x: x, y: y}
}

// State returns the current state words. The pair returned is never
// (0, 0). Passing the words back to New resumes the sequence exactly.
func (r *Rng) State() (x, y uint64) {
	return r.x, r.y
}

// Uint64 returns a uniformly distributed 64-bit word and advances the
// state by one step.
//
// The shift and rotation amounts below give the transition full
// period over the 128-bit state space. They are not tunable: any
// other pair needs a fresh order proof.
func (r *Rng) Uint64() uint64 {
	x := r.y ^ r.y>>19
	y := r.x ^ bits.RotateLeft64(r.y, -7)
	r.x, r.y = x, y
	hi, lo := bits.Mul64(x, x)
	return y + (hi ^ lo)
}

// Uint32 returns a uniformly distributed 32-bit word, consuming one
// 64-bit draw.
func (r *Rng) Uint32() uint32 {
	return uint32(r.Uint64())
}

// Bool returns true or false with equal probability.
func (r *Rng) Bool() bool {
	return int64(r.Uint64()) < 0
}

// Split derives a new generator from two draws of the parent. The
// child's sequence is statistically independent of the parent's
// continuation, so the two may be used side by side, for example one
// per goroutine.
func (r *Rng) Split() *Rng {
	x := r.Uint64()
	y := r.Uint64()
	// Forcing the low bit keeps the child state non-zero.
	return &Rng{x: x | 1, y: y}
}
