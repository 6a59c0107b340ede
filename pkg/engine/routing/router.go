package routing

import (
	"github.com/lintang-b-s/bestpath/pkg"
	da "github.com/lintang-b-s/bestpath/pkg/datastructure"
	"go.uber.org/zap"
)

type RouteSegment struct {
	Result     PathResult
	Directions []pkg.Direction
}

// Router visits targets greedily: always the cheapest remaining one from the current position.
// This is nearest-next sequencing, not a tour optimizer.
type Router struct {
	graph      *da.Graph
	dijkstra   *Dijkstra
	translator DirectionTranslator
	logger     *zap.Logger
}

func NewRouter(graph *da.Graph, heapArity int, translator DirectionTranslator, logger *zap.Logger) *Router {
	return &Router{
		graph:      graph,
		dijkstra:   NewDijkstra(graph, heapArity),
		translator: translator,
		logger:     logger,
	}
}

// Route returns one segment per visited target in visiting order. Targets without a path
// from the current position are dropped, never retried.
func (r *Router) Route(start da.Index, targets []da.Index) ([]RouteSegment, error) {
	current := start
	remaining := make([]da.Index, len(targets))
	copy(remaining, targets)

	segments := make([]RouteSegment, 0, len(targets))
	for len(remaining) > 0 {
		results := r.dijkstra.FindShortestPaths(current, remaining)

		best := -1
		kept := remaining[:0]
		keptResults := make([]PathResult, 0, len(results))
		for i, res := range results {
			if !res.Found() {
				r.logger.Debug("dropping target without path",
					zap.Uint32("target", uint32(remaining[i])), zap.Uint32("from", uint32(current)))
				continue
			}
			kept = append(kept, remaining[i])
			keptResults = append(keptResults, res)
			if best == -1 || res.TotalCost < keptResults[best].TotalCost {
				best = len(keptResults) - 1
			}
		}
		remaining = kept
		if best == -1 {
			break
		}

		chosen := keptResults[best]
		directions, err := r.translator.PathToDirections(chosen.Path)
		if err != nil {
			return nil, err
		}
		segments = append(segments, RouteSegment{Result: chosen, Directions: directions})

		current = chosen.Target
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return segments, nil
}
