package spatialindex

import (
	"sort"

	da "github.com/lintang-b-s/bestpath/pkg/datastructure"
	"github.com/lintang-b-s/bestpath/pkg/util"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// Rtree indexes points of interest (tiles with content) by world coordinate.
type Rtree struct {
	tr   *rtree.RTreeG[PointOfInterest]
	size int
}

type PointOfInterest struct {
	coordinate da.Coordinate
	content    string
}

func (p PointOfInterest) GetCoordinate() da.Coordinate {
	return p.coordinate
}

func (p PointOfInterest) GetContent() string {
	return p.content
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[PointOfInterest]
	return &Rtree{
		tr: &tr,
	}
}

func point(c da.Coordinate) [2]float64 {
	return [2]float64{float64(c.Row), float64(c.Col)}
}

// Build. index every cell that carries content.
func (rt *Rtree) Build(pois []da.KnownCell, log *zap.Logger) {
	log.Info("Building R-tree spatial index of points of interest...", zap.Int("candidates", len(pois)))
	for _, p := range pois {
		if !p.Tile.HasContent() {
			continue
		}
		rt.Insert(p.Coordinate, p.Tile.Content)
	}
	log.Info("R-tree spatial index built.", zap.Int("points", rt.size))
}

func (rt *Rtree) Insert(c da.Coordinate, content string) {
	rt.tr.Insert(point(c), point(c), PointOfInterest{coordinate: c, content: content})
	rt.size++
}

func (rt *Rtree) Len() int {
	return rt.size
}

// SearchWithinRadius all points of interest within Chebyshev distance radius of center,
// nearest first (Manhattan distance, then row, then col).
func (rt *Rtree) SearchWithinRadius(center da.Coordinate, radius int) []PointOfInterest {
	lower := point(center.Add(-radius, -radius))
	upper := point(center.Add(radius, radius))

	results := make([]PointOfInterest, 0, 10)
	rt.tr.Search(lower, upper,
		func(min, max [2]float64, data PointOfInterest) bool {
			results = append(results, data)
			return true
		})

	manhattan := func(c da.Coordinate) int {
		return util.Abs(c.Row-center.Row) + util.Abs(c.Col-center.Col)
	}
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i].coordinate, results[j].coordinate
		di, dj := manhattan(a), manhattan(b)
		if di != dj {
			return di < dj
		}
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Col < b.Col
	})
	return results
}
