package bruteforce

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/rangecover/geom"
	"github.com/viant/rangecover/internal/octree"
	"github.com/viant/rangecover/solver"
)

// DefaultMaxVolume caps the number of points scored by default.
const DefaultMaxVolume int64 = 1 << 21

// Solver scans all points of the root volume.
type Solver struct {
	MaxVolume int64
	Root      solver.RootStrategy
}

// New returns a Solver with default limits.
func New() *Solver {
	return &Solver{MaxVolume: DefaultMaxVolume, Root: solver.RootExtents}
}

// Solve returns the best point, lexicographically smallest among exact ties.
func (s *Solver) Solve(ctx context.Context, ranges []geom.Range) (solver.Result, error) {
	start := time.Now()
	if err := solver.Prepare(ranges); err != nil {
		return solver.Result{}, err
	}
	lo, hi := solver.RootExtent(ranges, s.Root)
	volume := octree.NewBox(lo, hi, nil).Volume()
	limit := s.MaxVolume
	if limit <= 0 {
		limit = DefaultMaxVolume
	}
	if volume > limit {
		return solver.Result{}, fmt.Errorf("bruteforce: %d points in %s-%s exceeds %d: %w", volume, lo, hi, limit, solver.ErrVolumeTooLarge)
	}
	best := solver.Result{Count: -1, Proven: true}
	steps := 0
	for x := lo[0]; x <= hi[0]; x++ {
		if err := ctx.Err(); err != nil {
			return solver.Result{}, err
		}
		for y := lo[1]; y <= hi[1]; y++ {
			for z := lo[2]; z <= hi[2]; z++ {
				steps++
				p := geom.Coord{x, y, z}
				count := geom.Coverage(ranges, p)
				distance := p.Norm()
				if solver.Better(count, distance, best.Count, best.Distance) {
					best.Point, best.Count, best.Distance = p, count, distance
				}
			}
		}
	}
	best.Stats = solver.Stats{Steps: steps, Duration: time.Since(start)}
	if best.Count <= 0 {
		return best, solver.ErrNoSolution
	}
	return best, nil
}

// Ensure Solver satisfies the solver.Solver interface.
var _ solver.Solver = (*Solver)(nil)
