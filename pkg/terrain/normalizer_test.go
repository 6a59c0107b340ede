package terrain

import (
	"math"
	"testing"

	"github.com/lintang-b-s/bestpath/pkg"
	da "github.com/lintang-b-s/bestpath/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	known := []da.KnownCell{
		da.NewKnownCell(da.NewCoordinate(-1, 2), da.NewTile(pkg.SAND, 0)),
		da.NewKnownCell(da.NewCoordinate(1, 4), da.NewTile(pkg.HILL, 2)),
		da.NewKnownCell(da.NewCoordinate(-1, 2), da.NewTile(pkg.STREET, 1)),
	}
	targets := []da.Coordinate{da.NewCoordinate(2, 3)}
	start := da.NewCoordinate(0, 1)

	m, tr, err := Normalize(known, targets, start)
	require.NoError(t, err)

	assert.Equal(t, da.NewCoordinate(-1, 1), tr.GetOrigin())
	assert.Equal(t, 4, m.Rows())
	assert.Equal(t, 4, m.Cols())
	assert.Equal(t, 2, m.NumberOfKnown())

	cell, ok := tr.ToCell(da.NewCoordinate(-1, 2))
	require.True(t, ok)
	assert.True(t, m.IsKnown(cell.Row, cell.Col))
	assert.Equal(t, da.NewTile(pkg.STREET, 1), m.Get(cell.Row, cell.Col), "later record wins")

	cell, _ = tr.ToCell(start)
	assert.False(t, m.IsKnown(cell.Row, cell.Col))
	assert.Equal(t, da.ImpassableTile(), m.Get(cell.Row, cell.Col))
}

func TestNormalizeSingleCell(t *testing.T) {
	start := da.NewCoordinate(7, -3)
	m, tr, err := Normalize(nil, []da.Coordinate{start}, start)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Size())
	assert.Equal(t, start, tr.GetOrigin())
}

func TestNormalizeNoTargets(t *testing.T) {
	_, _, err := Normalize(nil, nil, da.NewCoordinate(0, 0))
	assert.ErrorIs(t, err, ErrNoTargets)
}

func TestNormalizeTooLarge(t *testing.T) {
	testCases := []struct {
		name    string
		start   da.Coordinate
		targets []da.Coordinate
	}{
		{
			name:    "far target",
			start:   da.NewCoordinate(0, 0),
			targets: []da.Coordinate{da.NewCoordinate(3_000_000_000, 3_000_000_000)},
		},
		{
			name:    "span overflows int",
			start:   da.NewCoordinate(math.MinInt, 0),
			targets: []da.Coordinate{da.NewCoordinate(math.MaxInt, 0)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, _, err := Normalize(nil, tc.targets, tc.start)
			assert.ErrorIs(t, err, da.ErrMatrixTooLarge)
			assert.Nil(t, m)
		})
	}
}
