package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
)

// WriteUint64 writes c to w as 8 little-endian bytes.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if w.Available() < 8 {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available() < 8 {
			return 0, fmt.Errorf("cannot WriteUint64: available buffer is smaller than 8 bytes even after flush")
		}
	}

	buf := w.AvailableBuffer()[:8]

	binary.LittleEndian.PutUint64(buf, c)

	nint, err := w.Write(buf)

	return int64(nint), err
}

// WriteFloat64 writes the IEEE 754 binary representation of c to w as 8
// little-endian bytes.
func WriteFloat64(w Writer, c float64) (n int64, err error) {
	return WriteUint64(w, math.Float64bits(c))
}
