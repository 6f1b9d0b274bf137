package branchbound

import (
	"context"
	"time"
)

const (
	exhaustedBySteps   = "steps"
	exhaustedByTime    = "time"
	exhaustedByContext = "context"
)

// budget tracks search effort against the configured limits.
type budget struct {
	maxSteps int
	deadline time.Time
	steps    int
}

func newBudget(maxSteps int, timeLimit time.Duration, start time.Time) *budget {
	b := &budget{maxSteps: maxSteps}
	if timeLimit > 0 {
		b.deadline = start.Add(timeLimit)
	}
	return b
}

// exhausted returns the name of the limit that has been reached, or "".
func (b *budget) exhausted(ctx context.Context) string {
	if ctx.Err() != nil {
		return exhaustedByContext
	}
	if b.maxSteps > 0 && b.steps >= b.maxSteps {
		return exhaustedBySteps
	}
	if !b.deadline.IsZero() && !time.Now().Before(b.deadline) {
		return exhaustedByTime
	}
	return ""
}

func (b *budget) recordStep() { b.steps++ }
