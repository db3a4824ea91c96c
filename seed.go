package xorsquare

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

const golden = 0x9e3779b97f4a7c15

// Fallback state used in the vanishingly unlikely event that seed
// derivation produces the all-zero pair.
const (
	fallbackX = golden
	fallbackY = 0x2545f4914f6cdd1d
)

// mix64 is the splitmix64 avalanche finalizer: every input bit
// affects every output bit, and the map is a bijection on uint64.
func mix64(v uint64) uint64 {
	v ^= v >> 30
	v *= 0xbf58476d1ce4e5b9
	v ^= v >> 27
	v *= 0x94d049bb133111eb
	v ^= v >> 31
	return v
}

// FromUint64 returns a generator deterministically seeded from a
// 64-bit value. Equal seeds yield equal sequences on every platform.
//
// Each state word is derived by avalanching the seed offset by a
// distinct multiple of the golden-ratio constant, so sparse or small
// seeds (including zero) still produce well-mixed initial states with
// no low-entropy warm-up.
func FromUint64(seed uint64) *Rng {
	x := mix64(seed + golden)
	// Left-associated so the doubled increment wraps at runtime; the
	// untyped constant 2*golden itself would not fit in a uint64.
	y := mix64(seed + golden + golden)
	if x|y == 0 {
		x, y = fallbackX, fallbackY
	}
	return &Rng{x: x, y: y}
}

// FromEntropy returns a generator seeded with 16 bytes of operating
// system randomness. The error is non-nil only when the OS entropy
// source fails; no retry is attempted here, and the deterministic
// FromUint64 path is unaffected by such failures.
func FromEntropy() (*Rng, error) {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return nil, fmt.Errorf("entropy unavailable: %w", err)
	}
	x := binary.LittleEndian.Uint64(buf[0:8])
	y := binary.LittleEndian.Uint64(buf[8:16])
	if x|y == 0 {
		x, y = fallbackX, fallbackY
	}
	return &Rng{x: x, y: y}, nil
}
