package spatialindex

import (
	"testing"

	"github.com/lintang-b-s/bestpath/pkg"
	da "github.com/lintang-b-s/bestpath/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSearchWithinRadius(t *testing.T) {
	rt := NewRtree()
	rt.Build([]da.KnownCell{
		da.NewKnownCell(da.NewCoordinate(0, 0), da.NewTileWithContent(pkg.GRASS, 0, "a")),
		da.NewKnownCell(da.NewCoordinate(2, 2), da.NewTileWithContent(pkg.GRASS, 0, "b")),
		da.NewKnownCell(da.NewCoordinate(1, 3), da.NewTileWithContent(pkg.GRASS, 0, "c")),
		da.NewKnownCell(da.NewCoordinate(5, 5), da.NewTileWithContent(pkg.GRASS, 0, "d")),
		da.NewKnownCell(da.NewCoordinate(3, 1), da.NewTile(pkg.GRASS, 0)),
	}, zap.NewNop())
	assert.Equal(t, 4, rt.Len())

	testCases := []struct {
		name   string
		center da.Coordinate
		radius int
		want   []string
	}{
		{name: "radius zero on a point", center: da.NewCoordinate(2, 2), radius: 0, want: []string{"b"}},
		{name: "ties by row then col", center: da.NewCoordinate(1, 1), radius: 2, want: []string{"a", "c", "b"}},
		{name: "chebyshev box, not manhattan ball", center: da.NewCoordinate(3, 3), radius: 2, want: []string{"c", "b", "d"}},
		{name: "nothing nearby", center: da.NewCoordinate(-10, -10), radius: 3, want: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := make([]string, 0)
			for _, p := range rt.SearchWithinRadius(tc.center, tc.radius) {
				got = append(got, p.GetContent())
			}
			assert.Equal(t, tc.want, got)
		})
	}
}
