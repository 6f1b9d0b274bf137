package geom

import (
	"encoding/binary"
	"fmt"
)

// CoordSize is the encoded length of a Coord in bytes.
const CoordSize = Dims * 8

// EncodeCoord encodes c as a BLOB of little-endian int64 values, one per axis.
func EncodeCoord(c Coord) []byte {
	b := make([]byte, CoordSize)
	for i, v := range c {
		binary.LittleEndian.PutUint64(b[i*8:], uint64(v))
	}
	return b
}

// DecodeCoord decodes a BLOB produced by EncodeCoord.
func DecodeCoord(b []byte) (Coord, error) {
	var c Coord
	if len(b) != CoordSize {
		return c, fmt.Errorf("geom: invalid coord blob length %d (want %d)", len(b), CoordSize)
	}
	for i := range c {
		c[i] = int64(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return c, nil
}
