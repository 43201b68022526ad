package sampling

import (
	"encoding/binary"
)

// RandUint64 reads a uniform uint64 from prng.
func RandUint64(prng PRNG) uint64 {
	b := make([]byte, 8)
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandFloat64 reads a random float between min and max from prng.
func RandFloat64(prng PRNG, min, max float64) float64 {
	f := float64(RandUint64(prng)) / 1.8446744073709552e+19
	return min + f*(max-min)
}

// RandInt reads a random int in [0, max) from prng.
func RandInt(prng PRNG, max int) int {
	return int(RandUint64(prng) % uint64(max))
}
