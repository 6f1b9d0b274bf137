package tree

// This implementation is adapted from github.com/viant/gds/tree/cover.

import (
	"math"
)

// Tree is a cover tree over lattice points under the Manhattan metric. It is
// not safe for concurrent use.
type Tree[T any] struct {
	root         *Node
	base         float64
	distanceFunc DistanceFunc
	values       values[T]
	size         int
	version      uint64
}

// NewTree constructs a cover tree with the provided base.
func NewTree[T any](base float64) *Tree[T] {
	if base <= 1 {
		base = 1.3
	}
	return &Tree[T]{
		base:         base,
		distanceFunc: ManhattanDistance,
		values:       values[T]{},
	}
}

// Len returns the number of stored points.
func (t *Tree[T]) Len() int { return t.size }

// Insert adds a new value/point pair to the tree and returns its index.
func (t *Tree[T]) Insert(value T, point *Point) int32 {
	point.index = t.values.put(value)
	if t.root == nil {
		node := NewNode(point, 0, t.base)
		t.root = &node
	} else {
		t.insert(t.root, point, 0)
	}
	t.size++
	t.version++
	return point.index
}

// Value returns the stored value for the given point.
func (t *Tree[T]) Value(point *Point) T {
	var zero T
	if point == nil || !point.HasValue() {
		return zero
	}
	return t.values.value(point.index)
}

func (t *Tree[T]) insert(node *Node, point *Point, level int32) {
	for {
		baseLevel := math.Pow(t.base, float64(level))
		distance := float64(t.distanceFunc(point, node.point))
		if distance < baseLevel {
			inserted := false
			for i := range node.children {
				child := &node.children[i]
				if float64(t.distanceFunc(point, child.point)) < baseLevel {
					node = child
					level--
					inserted = true
					break
				}
			}
			if !inserted {
				node.children = append(node.children, NewNode(point, level-1, t.base))
				return
			}
		} else {
			level++
			if level > node.level {
				newRoot := NewNode(point, level, t.base)
				newRoot.children = append(newRoot.children, *t.root)
				t.root = &newRoot
				return
			}
		}
	}
}

// Within returns every stored point whose distance to query is at most
// radius.
func (t *Tree[T]) Within(query *Point, radius int64) []*Point {
	if t.root == nil {
		return nil
	}
	var out []*Point
	stack := []*Node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t.distanceFunc(query, n.point) <= radius {
			out = append(out, n.point)
		}
		for i := range n.children {
			child := &n.children[i]
			if t.distanceFunc(query, child.point)-t.ensureRadius(child) > radius {
				continue
			}
			stack = append(stack, child)
		}
	}
	return out
}

// ensureRadius returns an upper bound on the distance from n to any point in
// its subtree, cached per tree version.
func (t *Tree[T]) ensureRadius(n *Node) int64 {
	if n == nil {
		return 0
	}
	if n.radiusComputed == t.version {
		return n.radius
	}
	if len(n.children) == 0 {
		n.radius = 0
		n.radiusComputed = t.version
		return 0
	}
	var maxR int64
	for i := range n.children {
		child := &n.children[i]
		d := t.distanceFunc(n.point, child.point) + t.ensureRadius(child)
		if d > maxR {
			maxR = d
		}
	}
	n.radius = maxR
	n.radiusComputed = t.version
	return maxR
}
