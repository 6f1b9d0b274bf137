package coverage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/rangecover/geom"
	"github.com/viant/rangecover/solver"
	"github.com/viant/rangecover/solver/branchbound"
	"github.com/viant/rangecover/solver/bruteforce"
)

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{"": KindAuto, "AUTO": KindAuto, "brute": KindBruteForce, "bnb": KindBranchBound} {
		got, err := ParseKind(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseKind("annealing")
	assert.Error(t, err)
}

func TestResolveKind(t *testing.T) {
	small := []geom.Range{{Center: geom.Coord{0, 0, 0}, Radius: 3}}
	large := []geom.Range{{Center: geom.Coord{0, 0, 0}, Radius: 1000}}
	assert.Equal(t, KindBruteForce, ResolveKind(KindAuto, small, solver.RootExtents))
	assert.Equal(t, KindBranchBound, ResolveKind(KindAuto, large, solver.RootExtents))
	assert.Equal(t, KindBruteForce, ResolveKind(KindAuto, large, solver.RootCenters))
	assert.Equal(t, KindBranchBound, ResolveKind(KindBranchBound, small, solver.RootExtents))
	assert.Equal(t, KindBranchBound, ResolveKind(KindAuto, nil, solver.RootExtents))

	assert.IsType(t, &bruteforce.Solver{}, New(small, Options{}))
	assert.IsType(t, &branchbound.Solver{}, New(large, Options{}))
}

func TestSolve(t *testing.T) {
	ranges := []geom.Range{
		{Center: geom.Coord{10, 12, 12}, Radius: 2},
		{Center: geom.Coord{12, 14, 12}, Radius: 2},
		{Center: geom.Coord{16, 12, 12}, Radius: 4},
		{Center: geom.Coord{14, 14, 14}, Radius: 6},
		{Center: geom.Coord{50, 50, 50}, Radius: 200},
		{Center: geom.Coord{10, 10, 10}, Radius: 5},
	}
	for _, kind := range []Kind{KindAuto, KindBranchBound} {
		res, err := Solve(context.Background(), ranges, Options{Kind: kind})
		require.NoError(t, err)
		assert.Equal(t, 5, res.Count)
		assert.EqualValues(t, 36, res.Distance)
		assert.Equal(t, geom.Coord{12, 12, 12}, res.Point)
	}

	_, err := Solve(context.Background(), nil, Options{})
	assert.ErrorIs(t, err, solver.ErrEmptyInput)
}
