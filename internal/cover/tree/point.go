package tree

import "github.com/viant/rangecover/geom"

// Point is a lattice point stored in the cover tree.
type Point struct {
	index int32
	Coord geom.Coord
}

// HasValue reports whether the point has an associated value.
func (p *Point) HasValue() bool {
	return p != nil && p.index >= 0
}

// NewPoint constructs a point for the given coordinate.
func NewPoint(coord geom.Coord) *Point {
	return &Point{index: -1, Coord: coord}
}
