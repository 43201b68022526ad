package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ReadUint64 reads 8 little-endian bytes from r into c.
func ReadUint64(r Reader, c *uint64) (n int, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb [8]byte

	if n, err = r.Read(bb[:]); err != nil {
		return
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return n, nil
}

// ReadFloat64 reads 8 little-endian bytes from r into c, interpreting
// them as an IEEE 754 binary representation.
func ReadFloat64(r Reader, c *float64) (n int, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadFloat64: c is nil")
	}

	var bits uint64
	if n, err = ReadUint64(r, &bits); err != nil {
		return
	}

	*c = math.Float64frombits(bits)

	return n, nil
}
