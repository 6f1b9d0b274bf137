package branchbound

import (
	"io"
	"log/slog"
	"time"

	"github.com/viant/rangecover/solver"
)

const (
	// parallelMinRanges is the smallest input for which child boxes are
	// evaluated concurrently.
	parallelMinRanges = 64
	// progressEvery controls how often progress is logged, in steps.
	progressEvery = 100_000
)

type config struct {
	root        solver.RootStrategy
	maxSteps    int
	timeLimit   time.Duration
	parallelism int
	incumbent   bool
	logger      *slog.Logger
}

func defaultConfig() config {
	return config{
		root:      solver.RootExtents,
		incumbent: true,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures a Solver.
type Option func(*config)

// WithRoot selects how the initial search volume is derived.
func WithRoot(s solver.RootStrategy) Option { return func(c *config) { c.root = s } }

// WithMaxSteps caps the number of boxes popped; 0 means unlimited.
func WithMaxSteps(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.maxSteps = n
	}
}

// WithTimeLimit caps wall-clock search time; 0 means unlimited.
func WithTimeLimit(d time.Duration) Option {
	return func(c *config) {
		if d < 0 {
			d = 0
		}
		c.timeLimit = d
	}
}

// WithParallelism evaluates the children of a split on up to n goroutines.
func WithParallelism(n int) Option { return func(c *config) { c.parallelism = n } }

// WithIncumbent toggles incumbent seeding and pruning.
func WithIncumbent(enabled bool) Option { return func(c *config) { c.incumbent = enabled } }

// WithLogger sets the logger used for debug events.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
