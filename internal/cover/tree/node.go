package tree

import "math"

// Node represents a cover-tree node.
type Node struct {
	level          int32
	baseLevel      float64
	point          *Point
	children       []Node
	radius         int64
	radiusComputed uint64
}

// NewNode constructs a node for the provided point and level.
func NewNode(point *Point, level int32, base float64) Node {
	return Node{
		level:     level,
		baseLevel: math.Pow(base, float64(level)),
		point:     point,
	}
}
