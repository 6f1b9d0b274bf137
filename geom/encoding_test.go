package geom

import (
	"math"
	"testing"
)

func TestEncodeDecodeCoord_RoundTrip(t *testing.T) {
	for _, c := range []Coord{Origin, {1, -2, 3}, {math.MaxInt64, math.MinInt64, -1}} {
		b := EncodeCoord(c)
		if len(b) != CoordSize {
			t.Fatalf("EncodeCoord(%v) len = %d, want %d", c, len(b), CoordSize)
		}
		got, err := DecodeCoord(b)
		if err != nil {
			t.Fatalf("DecodeCoord failed: %v", err)
		}
		if got != c {
			t.Fatalf("DecodeCoord = %v, want %v", got, c)
		}
	}
}

func TestDecodeCoord_InvalidLength(t *testing.T) {
	if _, err := DecodeCoord(make([]byte, 7)); err == nil {
		t.Fatalf("expected error for short blob")
	}
}
