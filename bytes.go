package xorsquare

import "encoding/binary"

// FillBytes fills p with uniformly distributed bytes.
//
// Each full 8-byte chunk is one raw word serialized little-endian; a
// trailing chunk of 1 to 7 bytes takes the low bytes of exactly one
// more word. The byte order is a stable contract: a buffer of length
// L always matches the first L bytes of ⌈L/8⌉ little-endian words.
// An empty buffer consumes no draws.
func (r *Rng) FillBytes(p []byte) {
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, r.Uint64())
		p = p[8:]
	}
	if len(p) > 0 {
		var tail [8]byte
		binary.LittleEndian.PutUint64(tail[:], r.Uint64())
		copy(p, tail[:])
	}
}
