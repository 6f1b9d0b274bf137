package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManhattan(t *testing.T) {
	d, err := Manhattan(Coord{1, -2, 3}, Coord{-1, 2, 0})
	require.NoError(t, err)
	assert.EqualValues(t, 9, d)
	assert.EqualValues(t, 9, Coord{1, -2, 3}.Distance(Coord{-1, 2, 0}))
	assert.EqualValues(t, 6, Coord{1, -2, 3}.Norm())
}

func TestManhattan_Overflow(t *testing.T) {
	_, err := Manhattan(Coord{math.MaxInt64, 0, 0}, Coord{-1, 0, 0})
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = Manhattan(Coord{math.MaxInt64 / 2, math.MaxInt64 / 2, math.MaxInt64 / 2}, Origin)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = Manhattan(Coord{math.MinInt64, 0, 0}, Origin)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate([]Range{{Center: Coord{1, 2, 3}, Radius: 4}}))
	assert.NoError(t, Validate([]Range{{Center: Coord{MaxMagnitude - 5, 0, 0}, Radius: 5}}))

	err := Validate([]Range{{Center: Coord{0, 0, 0}, Radius: -1}})
	assert.ErrorIs(t, err, ErrNegativeRadius)

	err = Validate([]Range{{Center: Coord{MaxMagnitude, 0, 0}, Radius: 1}})
	assert.ErrorIs(t, err, ErrOverflow)

	err = Validate([]Range{{Center: Coord{0, -MaxMagnitude - 1, 0}, Radius: 0}})
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestRangeContainsAndCoverage(t *testing.T) {
	ranges := []Range{
		{Center: Coord{0, 0, 0}, Radius: 2},
		{Center: Coord{3, 0, 0}, Radius: 1},
		{Center: Coord{10, 10, 10}, Radius: 0},
	}
	assert.True(t, ranges[0].Contains(Coord{1, 1, 0}))
	assert.False(t, ranges[0].Contains(Coord{1, 1, 1}))
	assert.Equal(t, 2, Coverage(ranges, Coord{2, 0, 0}))
	assert.Equal(t, 1, Coverage(ranges, Coord{10, 10, 10}))
	assert.Equal(t, 0, Coverage(ranges, Coord{5, 5, 5}))
}

func TestCoordLessAndString(t *testing.T) {
	assert.True(t, Coord{0, 1, 2}.Less(Coord{0, 2, 0}))
	assert.False(t, Coord{0, 1, 2}.Less(Coord{0, 1, 2}))
	assert.Equal(t, "<1,-2,3>", Coord{1, -2, 3}.String())
	assert.Equal(t, "pos=<1,-2,3>, r=4", Range{Center: Coord{1, -2, 3}, Radius: 4}.String())
}
