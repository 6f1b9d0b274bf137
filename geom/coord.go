package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// Dims is the dimensionality of Coord.
const Dims = 3

// Coord is a point on the integer lattice.
type Coord [Dims]int64

// Origin is the point all distances in a search are measured from.
var Origin = Coord{}

// String renders the point as <x,y,z>.
func (c Coord) String() string {
	parts := make([]string, Dims)
	for i, v := range c {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return "<" + strings.Join(parts, ",") + ">"
}

// Less orders coordinates lexicographically.
func (c Coord) Less(o Coord) bool {
	for i := range c {
		if c[i] != o[i] {
			return c[i] < o[i]
		}
	}
	return false
}

// Range is the set of points within Radius of Center under Manhattan distance.
type Range struct {
	Center Coord
	Radius int64
}

// Contains reports whether p is covered by the range.
func (r Range) Contains(p Coord) bool {
	return r.Center.Distance(p) <= r.Radius
}

func (r Range) String() string {
	return fmt.Sprintf("pos=%s, r=%d", r.Center, r.Radius)
}

// Coverage counts the ranges that contain p.
func Coverage(ranges []Range, p Coord) int {
	count := 0
	for _, r := range ranges {
		if r.Contains(p) {
			count++
		}
	}
	return count
}
