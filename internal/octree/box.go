// Package octree implements the bounding boxes explored by the coverage
// search: each box carries an admissible upper bound on the number of ranges
// any of its points can be covered by, and splits into up to eight children
// that partition its integer points exactly.
//
// All arithmetic assumes ranges passed geom.Validate.
package octree

import (
	"cmp"

	"github.com/viant/rangecover/geom"
)

// Box is an axis-aligned cuboid of integer points with inclusive corners.
type Box struct {
	Min  geom.Coord
	Max  geom.Coord
	Dims geom.Coord
	// Count is an upper bound on coverage of any point in the box; exact for
	// singletons.
	Count int
	// Distance is the smallest Manhattan distance from the origin to a point
	// in the box.
	Distance int64
}

// NewBox builds a box over [lo, hi] and derives its bound and distance
// from ranges.
func NewBox(lo, hi geom.Coord, ranges []geom.Range) Box {
	b := Box{Min: lo, Max: hi}
	var dimSum int64
	for i := range lo {
		b.Dims[i] = hi[i] - lo[i]
		dimSum += b.Dims[i]
		b.Distance += axisDistance(lo[i], hi[i])
	}
	for _, r := range ranges {
		if Overlaps(r, lo, hi, dimSum) {
			b.Count++
		}
	}
	return b
}

// Overlaps is a relaxed intersection test between a range and the box
// [lo, hi] whose extents sum to dimSum. It never reports false for a range
// that covers a point of the box, and is exact when lo == hi.
func Overlaps(r geom.Range, lo, hi geom.Coord, dimSum int64) bool {
	return r.Center.Distance(lo)+r.Center.Distance(hi) <= 2*r.Radius+dimSum
}

func axisDistance(lo, hi int64) int64 {
	switch {
	case lo > 0:
		return lo
	case hi < 0:
		return -hi
	default:
		return 0
	}
}

// Singleton reports whether the box holds exactly one point.
func (b Box) Singleton() bool { return b.Dims == geom.Coord{} }

// Volume returns the number of integer points in the box, saturating at
// MaxInt64.
func (b Box) Volume() int64 {
	const limit = int64(^uint64(0) >> 1)
	v := int64(1)
	for _, d := range b.Dims {
		n := d + 1
		if n <= 0 || v > limit/n {
			return limit
		}
		v *= n
	}
	return v
}

// Contains reports whether p lies in the box.
func (b Box) Contains(p geom.Coord) bool {
	for i := range p {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Compare orders boxes by search priority: higher Count first, then smaller
// Distance, then smaller volume, then lexicographic Min. It returns a negative
// number when a should be explored before b.
func Compare(a, b Box) int {
	if c := cmp.Compare(b.Count, a.Count); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Volume(), b.Volume()); c != 0 {
		return c
	}
	switch {
	case a.Min.Less(b.Min):
		return -1
	case b.Min.Less(a.Min):
		return 1
	}
	return 0
}

// Outranks reports whether a could hold a point strictly better than the
// incumbent point with the given count and distance.
func (b Box) Outranks(count int, distance int64) bool {
	if b.Count != count {
		return b.Count > count
	}
	return b.Distance < distance
}
