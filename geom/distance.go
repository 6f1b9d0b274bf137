package geom

import (
	"errors"
	"fmt"
	"math"
)

// MaxMagnitude bounds |center| + radius on every axis. Within it every sum the
// search performs (two distances, or 2*radius plus three extents) fits in int64.
const MaxMagnitude int64 = 1 << 58

var (
	// ErrOverflow is returned when a computation would not fit in int64.
	ErrOverflow = errors.New("geom: arithmetic overflow")
	// ErrNegativeRadius is returned for a range with radius < 0.
	ErrNegativeRadius = errors.New("geom: negative radius")
)

// Distance returns the Manhattan distance between c and o without overflow
// checks. Callers must only use it on coordinates that passed Validate.
func (c Coord) Distance(o Coord) int64 {
	var sum int64
	for i := range c {
		d := c[i] - o[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}

// Norm returns the Manhattan distance from the origin.
func (c Coord) Norm() int64 { return c.Distance(Origin) }

// Manhattan computes the Manhattan distance between a and b, returning
// ErrOverflow instead of wrapping.
func Manhattan(a, b Coord) (int64, error) {
	var sum int64
	for i := range a {
		d, ok := sub(a[i], b[i])
		if !ok {
			return 0, fmt.Errorf("geom: distance %s-%s axis %d: %w", a, b, i, ErrOverflow)
		}
		if d < 0 {
			if d == math.MinInt64 {
				return 0, fmt.Errorf("geom: distance %s-%s axis %d: %w", a, b, i, ErrOverflow)
			}
			d = -d
		}
		if sum, ok = add(sum, d); !ok {
			return 0, fmt.Errorf("geom: distance %s-%s: %w", a, b, ErrOverflow)
		}
	}
	return sum, nil
}

// Validate checks that every range has a non-negative radius and lies within
// MaxMagnitude on each axis.
func Validate(ranges []Range) error {
	for i, r := range ranges {
		if r.Radius < 0 {
			return fmt.Errorf("geom: range %d (%v): %w", i, r, ErrNegativeRadius)
		}
		if r.Radius > MaxMagnitude {
			return fmt.Errorf("geom: range %d radius %d exceeds %d: %w", i, r.Radius, MaxMagnitude, ErrOverflow)
		}
		for axis, v := range r.Center {
			if v > MaxMagnitude || v < -MaxMagnitude {
				return fmt.Errorf("geom: range %d axis %d center %d exceeds %d: %w", i, axis, v, MaxMagnitude, ErrOverflow)
			}
			lo, hi := v-r.Radius, v+r.Radius
			if hi > MaxMagnitude || lo < -MaxMagnitude {
				return fmt.Errorf("geom: range %d axis %d extent [%d,%d] exceeds %d: %w", i, axis, lo, hi, MaxMagnitude, ErrOverflow)
			}
		}
	}
	return nil
}

func add(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}
	return s, true
}

func sub(a, b int64) (int64, bool) {
	s := a - b
	if (b > 0 && s > a) || (b < 0 && s < a) {
		return 0, false
	}
	return s, true
}
