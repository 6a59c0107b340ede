package usecases

import (
	"context"

	da "github.com/lintang-b-s/bestpath/pkg/datastructure"
	"github.com/lintang-b-s/bestpath/pkg/engine"
	"github.com/lintang-b-s/bestpath/pkg/spatialindex"
)

type PlannerEngine interface {
	Plan(ctx context.Context, req engine.PlanRequest) (*engine.Plan, error)
}

type WorldStore interface {
	DiscoverTiles(ctx context.Context, coords []da.Coordinate) (map[da.Coordinate]da.Tile, error)
	Explored() []da.KnownCell
	Reveal(center da.Coordinate, radius int) []da.KnownCell
	NumberOfExplored() int
	DiscoverCalls() int
	Rows() int
	Cols() int
}

type SpatialIndex interface {
	SearchWithinRadius(center da.Coordinate, radius int) []spatialindex.PointOfInterest
	Len() int
}
