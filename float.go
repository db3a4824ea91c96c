package xorsquare

// Float64 returns a uniformly distributed value in the half-open
// interval [0, 1), consuming one draw.
//
// The result is the top 53 bits of a raw word scaled by 2⁻⁵³, so
// every output is exactly representable, outputs are evenly spaced,
// and 1.0 is never produced.
func (r *Rng) Float64() float64 {
	return float64(r.Uint64()>>11) * 0x1p-53
}

// Float32 returns a uniformly distributed value in the half-open
// interval [0, 1), consuming one draw. It is the single-precision
// analogue of Float64, built from the top 24 bits of a raw word.
func (r *Rng) Float32() float32 {
	return float32(r.Uint64()>>40) * 0x1p-24
}
