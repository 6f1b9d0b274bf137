package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/viant/rangecover/geom"
)

var (
	// ErrEmptyInput is returned when no ranges are supplied.
	ErrEmptyInput = errors.New("solver: empty input")
	// ErrNoSolution is returned when a search ends without a qualifying point.
	ErrNoSolution = errors.New("solver: no solution found")
	// ErrVolumeTooLarge is returned by exhaustive solvers for oversized extents.
	ErrVolumeTooLarge = errors.New("solver: volume too large")
)

// Result is the point covered by the most ranges, ties broken by the smallest
// Manhattan distance to the origin.
type Result struct {
	Point    geom.Coord
	Count    int
	Distance int64
	// Proven is false when the search stopped on a budget before proving
	// optimality; Point is then the best point found so far.
	Proven bool
	Stats  Stats
}

func (r Result) String() string {
	s := fmt.Sprintf("point=%s count=%d distance=%d", r.Point, r.Count, r.Distance)
	if !r.Proven {
		s += " (not proven optimal)"
	}
	return s
}

// Stats captures search effort.
type Stats struct {
	Steps    int
	Pushed   int
	Pruned   int
	Duration time.Duration
	// ExhaustedBy names the budget that stopped the search, if any.
	ExhaustedBy string
}

// Solver finds a maximum-coverage point.
type Solver interface {
	Solve(ctx context.Context, ranges []geom.Range) (Result, error)
}

// Better reports whether a point with (count, distance) beats one with
// (otherCount, otherDistance).
func Better(count int, distance int64, otherCount int, otherDistance int64) bool {
	if count != otherCount {
		return count > otherCount
	}
	return distance < otherDistance
}
