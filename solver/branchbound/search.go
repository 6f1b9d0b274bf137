package branchbound

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/viant/rangecover/geom"
	"github.com/viant/rangecover/internal/cover/tree"
	"github.com/viant/rangecover/internal/octree"
	"github.com/viant/rangecover/solver"
)

// Solver runs the branch-and-bound search. A Solver holds only
// configuration; every Solve call owns its own queue.
type Solver struct {
	cfg config
}

// New constructs a Solver.
func New(opts ...Option) *Solver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Solver{cfg: cfg}
}

type incumbent struct {
	valid    bool
	point    geom.Coord
	count    int
	distance int64
}

func (in *incumbent) offer(p geom.Coord, count int, distance int64) bool {
	if count <= 0 {
		return false
	}
	if in.valid && !solver.Better(count, distance, in.count, in.distance) {
		return false
	}
	in.valid, in.point, in.count, in.distance = true, p, count, distance
	return true
}

type search struct {
	cfg    config
	ranges []geom.Range
	queue  octree.Queue
	best   incumbent
	budget *budget
	stats  solver.Stats
	start  time.Time
}

// Solve finds the point covered by the most ranges, nearest the origin among
// ties.
func (s *Solver) Solve(ctx context.Context, ranges []geom.Range) (solver.Result, error) {
	start := time.Now()
	if err := solver.Prepare(ranges); err != nil {
		return solver.Result{}, err
	}
	st := &search{
		cfg:    s.cfg,
		ranges: ranges,
		budget: newBudget(s.cfg.maxSteps, s.cfg.timeLimit, start),
		start:  start,
	}
	if s.cfg.incumbent {
		st.seed()
	}
	lo, hi := solver.RootExtent(ranges, s.cfg.root)
	root := octree.NewBox(lo, hi, ranges)
	st.push(root)
	s.cfg.logger.Debug("branchbound: root",
		slog.Int("ranges", len(ranges)),
		slog.String("min", lo.String()),
		slog.String("max", hi.String()),
		slog.Int("bound", root.Count),
		slog.String("strategy", s.cfg.root.String()))
	return st.run(ctx)
}

// seed evaluates every range center exactly.
func (st *search) seed() {
	index := tree.NewRangeIndex(st.ranges)
	for _, r := range st.ranges {
		st.best.offer(r.Center, index.Count(r.Center), r.Center.Norm())
	}
	st.cfg.logger.Debug("branchbound: seeded",
		slog.String("point", st.best.point.String()),
		slog.Int("count", st.best.count))
}

func (st *search) push(b octree.Box) {
	st.queue.Push(b)
	st.stats.Pushed++
}

func (st *search) run(ctx context.Context) (solver.Result, error) {
	for {
		if reason := st.budget.exhausted(ctx); reason != "" {
			return st.exhausted(reason)
		}
		box, ok := st.queue.Pop()
		if !ok {
			if st.cfg.incumbent && st.best.valid {
				// every remaining box was pruned against the incumbent
				return st.done(st.best.point, st.best.count, st.best.distance), nil
			}
			st.stats.Duration = time.Since(st.start)
			return solver.Result{Stats: st.stats}, fmt.Errorf("branchbound: queue empty after %d steps: %w", st.stats.Steps, solver.ErrNoSolution)
		}
		st.budget.recordStep()
		st.stats.Steps++
		if st.stats.Steps%progressEvery == 0 {
			st.cfg.logger.Debug("branchbound: progress",
				slog.Int("steps", st.stats.Steps),
				slog.Int("queued", st.queue.Len()),
				slog.Int("bound", box.Count))
		}
		if st.cfg.incumbent && st.best.valid && !box.Outranks(st.best.count, st.best.distance) {
			return st.done(st.best.point, st.best.count, st.best.distance), nil
		}
		if box.Singleton() {
			if box.Count > 0 {
				return st.done(box.Min, box.Count, box.Distance), nil
			}
			continue
		}
		children := st.expand(box)
		for _, child := range children {
			if child.Count == 0 {
				st.stats.Pruned++
				continue
			}
			if child.Singleton() {
				st.best.offer(child.Min, child.Count, child.Distance)
				if st.cfg.incumbent {
					// the incumbent now ranks at least as high as this child
					st.stats.Pruned++
					continue
				}
			}
			if st.cfg.incumbent && st.best.valid && !child.Outranks(st.best.count, st.best.distance) {
				st.stats.Pruned++
				continue
			}
			st.push(child)
		}
	}
}

// expand splits box, evaluating children concurrently for large inputs.
func (st *search) expand(box octree.Box) []octree.Box {
	if st.cfg.parallelism <= 1 || len(st.ranges) < parallelMinRanges {
		children, _ := box.Split(st.ranges)
		return children
	}
	extents := octree.ChildExtents(box.Min, box.Max)
	children := make([]octree.Box, len(extents))
	var g errgroup.Group
	g.SetLimit(st.cfg.parallelism)
	for i, e := range extents {
		g.Go(func() error {
			children[i] = octree.NewBox(e.Min, e.Max, st.ranges)
			return nil
		})
	}
	_ = g.Wait()
	return children
}

func (st *search) done(p geom.Coord, count int, distance int64) solver.Result {
	st.stats.Duration = time.Since(st.start)
	st.cfg.logger.Debug("branchbound: done",
		slog.String("point", p.String()),
		slog.Int("count", count),
		slog.Int64("distance", distance),
		slog.Int("steps", st.stats.Steps),
		slog.Int("pushed", st.stats.Pushed),
		slog.Int("pruned", st.stats.Pruned),
		slog.Duration("elapsed", st.stats.Duration))
	return solver.Result{Point: p, Count: count, Distance: distance, Proven: true, Stats: st.stats}
}

func (st *search) exhausted(reason string) (solver.Result, error) {
	st.stats.Duration = time.Since(st.start)
	st.stats.ExhaustedBy = reason
	st.cfg.logger.Debug("branchbound: budget exhausted",
		slog.String("by", reason),
		slog.Int("steps", st.stats.Steps),
		slog.Int("queued", st.queue.Len()))
	if !st.best.valid {
		return solver.Result{Stats: st.stats}, fmt.Errorf("branchbound: %s budget exhausted before any point was scored: %w", reason, solver.ErrNoSolution)
	}
	return solver.Result{
		Point:    st.best.point,
		Count:    st.best.count,
		Distance: st.best.distance,
		Stats:    st.stats,
	}, nil
}

// Ensure Solver satisfies the solver.Solver interface.
var _ solver.Solver = (*Solver)(nil)
