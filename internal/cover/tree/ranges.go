package tree

import "github.com/viant/rangecover/geom"

// RangeIndex answers exact point-coverage queries by indexing range centers.
type RangeIndex struct {
	tree      *Tree[geom.Range]
	maxRadius int64
}

// NewRangeIndex indexes the centers of ranges.
func NewRangeIndex(ranges []geom.Range) *RangeIndex {
	idx := &RangeIndex{tree: NewTree[geom.Range](0)}
	for _, r := range ranges {
		idx.tree.Insert(r, NewPoint(r.Center))
		if r.Radius > idx.maxRadius {
			idx.maxRadius = r.Radius
		}
	}
	return idx
}

// Len returns the number of indexed ranges.
func (x *RangeIndex) Len() int { return x.tree.Len() }

// Covering returns the ranges that contain p.
func (x *RangeIndex) Covering(p geom.Coord) []geom.Range {
	candidates := x.tree.Within(NewPoint(p), x.maxRadius)
	var out []geom.Range
	for _, c := range candidates {
		r := x.tree.Value(c)
		if r.Contains(p) {
			out = append(out, r)
		}
	}
	return out
}

// Count returns the number of ranges that contain p.
func (x *RangeIndex) Count(p geom.Coord) int {
	count := 0
	for _, c := range x.tree.Within(NewPoint(p), x.maxRadius) {
		if x.tree.Value(c).Contains(p) {
			count++
		}
	}
	return count
}
