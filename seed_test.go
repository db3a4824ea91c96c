package xorsquare_test

import (
	"math/bits"
	"testing"

	"github.com/borkshop/xorsquare"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUint64States(t *testing.T) {
	for _, tc := range []struct {
		seed uint64
		x, y uint64
	}{
		{0, 0xe220a8397b1dcdaf, 0x6e789e6aa1b965f4},
		{1, 0x910a2dec89025cc1, 0xbeeb8da1658eec67},
		{^uint64(0), 0xe4d971771b652c20, 0xe99ff867dbf682c9},
		// This seed wraps seed+golden to exactly zero, so the first
		// word mixes to zero and both increments must wrap modulo
		// 2⁶⁴ for the pair to come out right.
		{0x61c8864680b583eb, 0, 0xe220a8397b1dcdaf},
	} {
		x, y := xorsquare.FromUint64(tc.seed).State()
		assert.Equal(t, tc.x, x, "seed %d", tc.seed)
		assert.Equal(t, tc.y, y, "seed %d", tc.seed)
	}
}

func TestFromUint64MixesWeakSeeds(t *testing.T) {
	// Adjacent and sparse seeds must land in unrelated states, not
	// states that echo the seed bits.
	seen := map[uint64]bool{}
	for seed := uint64(0); seed < 64; seed++ {
		x, y := xorsquare.FromUint64(seed).State()
		require.NotZero(t, x|y, "seed %d", seed)
		assert.NotEqual(t, seed, x, "seed %d leaked into state", seed)
		assert.False(t, seen[x], "seed %d collided", seed)
		seen[x] = true

		// A well-mixed state has roughly half of its 128 bits set.
		ones := bits.OnesCount64(x) + bits.OnesCount64(y)
		assert.InDelta(t, 64, ones, 30, "seed %d", seed)
	}
}

func TestFromEntropy(t *testing.T) {
	a, err := xorsquare.FromEntropy()
	require.NoError(t, err)
	x, y := a.State()
	require.NotZero(t, x|y)

	b, err := xorsquare.FromEntropy()
	require.NoError(t, err)
	assert.NotEqual(t, a.Uint64(), b.Uint64())
}
