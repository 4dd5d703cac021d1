// Package data generates the sample arrays that get sorted.
package data

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/sortviz/internal/config"
)

// Generate returns n random integers drawn uniformly from [lo, hi].
// Returns nil if n <= 0 or the range is empty.
func Generate(rng *rand.Rand, n, lo, hi int) []int {
	if n <= 0 || lo > hi {
		return nil
	}

	// Unsigned arithmetic keeps the span exact for any int bounds.
	span := uint64(hi) - uint64(lo) + 1
	values := make([]int, n)
	for i := range values {
		values[i] = int(uint64(lo) + offset(rng, span))
	}
	return values
}

// offset returns a uniform value in [0, span). A span of 0 stands for the
// full 64-bit range.
func offset(rng *rand.Rand, span uint64) uint64 {
	switch {
	case span == 0:
		return rng.Uint64()
	case span <= math.MaxInt64:
		return uint64(rng.Int63n(int64(span)))
	}
	for {
		// span > 2^63, so at least half of the draws are accepted.
		if v := rng.Uint64(); v < span {
			return v
		}
	}
}

// FromSettings generates an array sized and bounded by s.
func FromSettings(rng *rand.Rand, s config.Settings) []int {
	return Generate(rng, s.Size, s.Min, s.Max)
}
