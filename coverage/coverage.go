package coverage

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/rangecover/geom"
	"github.com/viant/rangecover/internal/octree"
	"github.com/viant/rangecover/solver"
	"github.com/viant/rangecover/solver/branchbound"
	"github.com/viant/rangecover/solver/bruteforce"
)

// Kind names a solver implementation.
type Kind string

const (
	KindAuto        Kind = "auto"
	KindBruteForce  Kind = "brute"
	KindBranchBound Kind = "branchbound"
)

const (
	autoBruteMaxVolume int64 = 4096
	autoBruteMaxRanges       = 32
)

// ParseKind parses a solver kind; the empty string selects KindAuto.
func ParseKind(v string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return KindAuto, nil
	case "brute", "bruteforce":
		return KindBruteForce, nil
	case "branchbound", "bnb", "octree":
		return KindBranchBound, nil
	}
	return "", fmt.Errorf("coverage: unknown solver kind %q", v)
}

// ResolveKind maps KindAuto to a concrete solver: brute force for tiny
// volumes with few ranges, branch-and-bound otherwise.
func ResolveKind(kind Kind, ranges []geom.Range, root solver.RootStrategy) Kind {
	switch kind {
	case KindBruteForce, KindBranchBound:
		return kind
	}
	if len(ranges) == 0 || len(ranges) > autoBruteMaxRanges || geom.Validate(ranges) != nil {
		return KindBranchBound
	}
	lo, hi := solver.RootExtent(ranges, root)
	if octree.NewBox(lo, hi, nil).Volume() <= autoBruteMaxVolume {
		return KindBruteForce
	}
	return KindBranchBound
}

// Options configures Solve.
type Options struct {
	Kind        Kind
	Root        solver.RootStrategy
	BranchBound []branchbound.Option
}

// New builds the solver selected for ranges.
func New(ranges []geom.Range, opts Options) solver.Solver {
	switch ResolveKind(opts.Kind, ranges, opts.Root) {
	case KindBruteForce:
		s := bruteforce.New()
		s.Root = opts.Root
		return s
	default:
		bbOpts := append([]branchbound.Option{branchbound.WithRoot(opts.Root)}, opts.BranchBound...)
		return branchbound.New(bbOpts...)
	}
}

// Solve finds the point covered by the most ranges, nearest the origin among
// ties.
func Solve(ctx context.Context, ranges []geom.Range, opts Options) (solver.Result, error) {
	return New(ranges, opts).Solve(ctx, ranges)
}
