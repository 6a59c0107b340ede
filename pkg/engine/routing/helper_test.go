package routing

import (
	"testing"

	"github.com/lintang-b-s/bestpath/pkg"
	da "github.com/lintang-b-s/bestpath/pkg/datastructure"
	"github.com/stretchr/testify/require"
)

// '.' grass, 's' sand, 'h' hill, '#' wall.
func gridGraph(t *testing.T, rows []string) (*da.Graph, da.Transform) {
	t.Helper()
	types := map[byte]pkg.TileType{'.': pkg.GRASS, 's': pkg.SAND, 'h': pkg.HILL, '#': pkg.WALL}

	m, err := da.NewMatrix(len(rows), len(rows[0]), da.ImpassableTile())
	require.NoError(t, err)
	for r, line := range rows {
		for c := 0; c < len(line); c++ {
			tt, ok := types[line[c]]
			require.True(t, ok, "unknown symbol %q", line[c])
			m.Set(r, c, da.NewTile(tt, 0), true)
		}
	}
	tr := da.NewTransform(da.Coordinate{}, m.Rows(), m.Cols())
	g, _, _, err := da.BuildGraph(m, tr, nil, da.Cell{})
	require.NoError(t, err)
	return g, tr
}

func vertex(tr da.Transform, row, col int) da.Index {
	return tr.CellToIndex(da.NewCell(row, col))
}

// pathCost sums the edge weights along path and fails when two consecutive vertices are not linked.
func pathCost(t *testing.T, g *da.Graph, path []da.Index) int64 {
	t.Helper()
	var cost int64
	for i := 1; i < len(path); i++ {
		found := false
		for _, e := range g.GetOutEdges(path[i-1]) {
			if e.GetHead() == path[i] {
				cost += e.GetWeight()
				found = true
				break
			}
		}
		require.True(t, found, "no edge %d -> %d", path[i-1], path[i])
	}
	return cost
}
