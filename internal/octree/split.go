package octree

import "github.com/viant/rangecover/geom"

// Extent is an inclusive [Min, Max] corner pair.
type Extent struct {
	Min geom.Coord
	Max geom.Coord
}

// ChildExtents halves every axis with non-zero extent at floor((lo+hi)/2)
// and returns all low/high combinations. It returns nil for a single point.
func ChildExtents(lo, hi geom.Coord) []Extent {
	out := []Extent{{Min: lo, Max: hi}}
	split := false
	for axis := range lo {
		if lo[axis] == hi[axis] {
			continue
		}
		split = true
		// arithmetic shift floors for negative sums too
		mid := (lo[axis] + hi[axis]) >> 1
		next := make([]Extent, 0, len(out)*2)
		for _, e := range out {
			low, high := e, e
			low.Max[axis] = mid
			high.Min[axis] = mid + 1
			next = append(next, low, high)
		}
		out = next
	}
	if !split {
		return nil
	}
	return out
}

// Split partitions the box into fresh children evaluated against ranges.
// It returns false for a singleton box.
func (b Box) Split(ranges []geom.Range) ([]Box, bool) {
	extents := ChildExtents(b.Min, b.Max)
	if extents == nil {
		return nil, false
	}
	children := make([]Box, len(extents))
	for i, e := range extents {
		children[i] = NewBox(e.Min, e.Max, ranges)
	}
	return children, true
}
