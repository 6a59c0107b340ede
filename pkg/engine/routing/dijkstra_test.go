package routing

import (
	"testing"

	da "github.com/lintang-b-s/bestpath/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDijkstraShortestPath(t *testing.T) {
	g, tr := gridGraph(t, []string{
		"...",
		".h.",
		"...",
	})

	testCases := []struct {
		name     string
		arity    int
		from, to da.Index
		wantCost int64
	}{
		{name: "around the hill", arity: 2, from: vertex(tr, 0, 0), to: vertex(tr, 2, 2), wantCost: 4},
		{name: "onto the hill", arity: 4, from: vertex(tr, 0, 1), to: vertex(tr, 1, 1), wantCost: 4},
		{name: "off the hill", arity: 3, from: vertex(tr, 1, 1), to: vertex(tr, 2, 1), wantCost: 1},
		{name: "neighbour", arity: 8, from: vertex(tr, 2, 0), to: vertex(tr, 2, 1), wantCost: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDijkstra(g, tc.arity)
			res := d.FindShortestPaths(tc.from, []da.Index{tc.to})
			require.Len(t, res, 1)
			require.True(t, res[0].Found())

			assert.Equal(t, tc.wantCost, res[0].TotalCost)
			assert.Equal(t, tc.from, res[0].Path[0])
			assert.Equal(t, tc.to, res[0].Path[len(res[0].Path)-1])
			assert.Equal(t, tc.wantCost, pathCost(t, g, res[0].Path))
		})
	}
}

func TestDijkstraSourceAndUnreachable(t *testing.T) {
	g, tr := gridGraph(t, []string{
		"..#.",
		"..#.",
	})
	d := NewDijkstra(g, 4)
	src := vertex(tr, 0, 0)
	res := d.FindShortestPaths(src, []da.Index{src, vertex(tr, 1, 3), vertex(tr, 0, 2)})

	assert.Equal(t, []da.Index{src}, res[0].Path)
	assert.Equal(t, int64(0), res[0].TotalCost)

	assert.False(t, res[1].Found())
	assert.Equal(t, int64(0), res[1].TotalCost)
	assert.Equal(t, vertex(tr, 1, 3), res[1].Target)

	assert.False(t, res[2].Found(), "walls are never entered")

	_, ok := d.GetDistance(vertex(tr, 1, 3))
	assert.False(t, ok)
	assert.Equal(t, 4, d.GetNumSettledNodes())
}

func TestDijkstraReuse(t *testing.T) {
	g, tr := gridGraph(t, []string{"s.s"})
	d := NewDijkstra(g, 4)

	first := d.FindShortestPaths(vertex(tr, 0, 0), []da.Index{vertex(tr, 0, 2)})
	second := d.FindShortestPaths(vertex(tr, 0, 2), []da.Index{vertex(tr, 0, 0)})

	assert.Equal(t, int64(3), first[0].TotalCost)
	assert.Equal(t, int64(3), second[0].TotalCost)
	assert.Equal(t, []da.Index{2, 1, 0}, second[0].Path)
}
