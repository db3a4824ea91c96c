package xorsquare

import "sync"

// Package-level convenience functions draw from a pool of generators,
// each lazily seeded from OS entropy. The pool caches one generator
// per P, so uncontended callers reuse a private instance and a
// generator is never used by two goroutines at once. The pool panics
// if entropy is unavailable at first use; call FromEntropy directly
// to handle that error.
var pool = sync.Pool{
	New: func() interface{} {
		r, err := FromEntropy()
		if err != nil {
			panic("xorsquare: " + err.Error())
		}
		return r
	},
}

// Uint64 returns a uniformly distributed 64-bit word from a pooled
// entropy-seeded generator.
func Uint64() uint64 {
	r := pool.Get().(*Rng)
	v := r.Uint64()
	pool.Put(r)
	return v
}

// Uint32 returns a uniformly distributed 32-bit word from a pooled
// generator.
func Uint32() uint32 {
	r := pool.Get().(*Rng)
	v := r.Uint32()
	pool.Put(r)
	return v
}

// Bool returns true or false with equal probability from a pooled
// generator.
func Bool() bool {
	r := pool.Get().(*Rng)
	v := r.Bool()
	pool.Put(r)
	return v
}

// BetweenUint64 returns a uniform integer in [lo, hi] from a pooled
// generator. It panics if lo > hi.
func BetweenUint64(lo, hi uint64) uint64 {
	r := pool.Get().(*Rng)
	defer pool.Put(r)
	return r.BetweenUint64(lo, hi)
}

// BetweenInt64 returns a uniform integer in [lo, hi] from a pooled
// generator. It panics if lo > hi.
func BetweenInt64(lo, hi int64) int64 {
	r := pool.Get().(*Rng)
	defer pool.Put(r)
	return r.BetweenInt64(lo, hi)
}

// Bernoulli returns true with probability approximately p from a
// pooled generator.
func Bernoulli(p float64) bool {
	r := pool.Get().(*Rng)
	v := r.Bernoulli(p)
	pool.Put(r)
	return v
}

// Float64 returns a uniform value in [0, 1) from a pooled generator.
func Float64() float64 {
	r := pool.Get().(*Rng)
	v := r.Float64()
	pool.Put(r)
	return v
}

// Float32 returns a uniform value in [0, 1) from a pooled generator.
func Float32() float32 {
	r := pool.Get().(*Rng)
	v := r.Float32()
	pool.Put(r)
	return v
}

// FillBytes fills p with uniform bytes from a pooled generator.
func FillBytes(p []byte) {
	r := pool.Get().(*Rng)
	r.FillBytes(p)
	pool.Put(r)
}

// Split returns a fresh generator derived from a pooled one, suitable
// for handing to a goroutine that wants private deterministic draws.
func Split() *Rng {
	r := pool.Get().(*Rng)
	child := r.Split()
	pool.Put(r)
	return child
}
