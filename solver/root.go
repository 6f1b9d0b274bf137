package solver

import (
	"fmt"
	"strings"

	"github.com/viant/rangecover/geom"
)

// RootStrategy selects how the initial search volume is derived from ranges.
type RootStrategy int

const (
	// RootExtents spans center-radius to center+radius on every axis and
	// contains every point covered by at least one range.
	RootExtents RootStrategy = iota
	// RootCenters spans only the range centers. It is smaller but can miss
	// the optimum for inputs whose densest region lies outside the centers'
	// hull.
	RootCenters
)

func (s RootStrategy) String() string {
	switch s {
	case RootCenters:
		return "centers"
	default:
		return "extents"
	}
}

// ParseRootStrategy parses "extents" or "centers".
func ParseRootStrategy(v string) (RootStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "extents", "extent":
		return RootExtents, nil
	case "centers", "center":
		return RootCenters, nil
	}
	return RootExtents, fmt.Errorf("solver: unknown root strategy %q", v)
}

// RootExtent returns the inclusive corners of the initial search volume.
// ranges must be non-empty and validated.
func RootExtent(ranges []geom.Range, strategy RootStrategy) (lo, hi geom.Coord) {
	for i, r := range ranges {
		var pad int64
		if strategy == RootExtents {
			pad = r.Radius
		}
		for axis, v := range r.Center {
			if i == 0 || v-pad < lo[axis] {
				lo[axis] = v - pad
			}
			if i == 0 || v+pad > hi[axis] {
				hi[axis] = v + pad
			}
		}
	}
	return lo, hi
}

// Prepare validates ranges for a search.
func Prepare(ranges []geom.Range) error {
	if len(ranges) == 0 {
		return ErrEmptyInput
	}
	return geom.Validate(ranges)
}
