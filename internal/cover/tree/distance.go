package tree

// DistanceFunc computes the distance between two points.
type DistanceFunc func(p1, p2 *Point) int64

// ManhattanDistance is the L1 metric the tree is built on.
func ManhattanDistance(p1, p2 *Point) int64 {
	return p1.Coord.Distance(p2.Coord)
}
