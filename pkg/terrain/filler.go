package terrain

import (
	"context"
	"fmt"

	da "github.com/lintang-b-s/bestpath/pkg/datastructure"
	"go.uber.org/zap"
)

// Discoverer resolves the true terrain of world cells. It may change the exploration state
// of whoever owns the world.
type Discoverer interface {
	DiscoverTiles(ctx context.Context, coords []da.Coordinate) (map[da.Coordinate]da.Tile, error)
}

// DiscovererFunc adapts a plain function to Discoverer.
type DiscovererFunc func(ctx context.Context, coords []da.Coordinate) (map[da.Coordinate]da.Tile, error)

func (f DiscovererFunc) DiscoverTiles(ctx context.Context, coords []da.Coordinate) (map[da.Coordinate]da.Tile, error) {
	return f(ctx, coords)
}

type FillStats struct {
	Discovered []da.KnownCell
	Estimated  int
}

// 8-neighbourhood scan order used for estimation.
var neighbourOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Fill resolves every unknown cell of m in a single forward pass: rows top to bottom,
// columns left to right.
//
// An unknown cell with at least one known 8-neighbour takes the tile of the most expensive
// one (first in neighbourOffsets order on ties) and stays unknown, so it never feeds the
// estimate of a later cell. An unknown cell without known neighbours is discovered one at a
// time; the discovered tile is stored and marked known before the pass moves on.
func Fill(ctx context.Context, m *da.Matrix, tr da.Transform, discoverer Discoverer, log *zap.Logger) (FillStats, error) {
	stats := FillStats{Discovered: make([]da.KnownCell, 0)}
	if discoverer == nil {
		return stats, ErrNoDiscoverer
	}

	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			if m.IsKnown(row, col) {
				continue
			}

			if estimate, ok := maxCostKnownNeighbour(m, row, col); ok {
				m.Set(row, col, estimate, false)
				stats.Estimated++
				continue
			}

			coord := tr.ToWorld(da.NewCell(row, col))
			tile, err := discoverOne(ctx, discoverer, coord)
			if err != nil {
				return FillStats{}, err
			}
			m.Set(row, col, tile, true)
			stats.Discovered = append(stats.Discovered, da.NewKnownCell(coord, tile))
		}
	}

	log.Debug("terrain filled",
		zap.Int("discovered", len(stats.Discovered)),
		zap.Int("estimated", stats.Estimated))
	return stats, nil
}

func maxCostKnownNeighbour(m *da.Matrix, row, col int) (da.Tile, bool) {
	var (
		best  da.Tile
		found bool
	)
	for _, d := range neighbourOffsets {
		nRow, nCol := row+d[0], col+d[1]
		if !m.InBounds(nRow, nCol) || !m.IsKnown(nRow, nCol) {
			continue
		}
		tile := m.Get(nRow, nCol)
		if !found || tile.Cost() > best.Cost() {
			best = tile
			found = true
		}
	}
	return best, found
}

func discoverOne(ctx context.Context, discoverer Discoverer, coord da.Coordinate) (da.Tile, error) {
	tiles, err := discoverer.DiscoverTiles(ctx, []da.Coordinate{coord})
	if err != nil {
		return da.Tile{}, fmt.Errorf("%w: cell %v: %w", ErrDiscovery, coord, err)
	}
	tile, ok := tiles[coord]
	if !ok {
		return da.Tile{}, fmt.Errorf("%w: cell %v missing from response", ErrDiscovery, coord)
	}
	return tile, nil
}
