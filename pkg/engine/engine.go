package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/lintang-b-s/bestpath/pkg"
	da "github.com/lintang-b-s/bestpath/pkg/datastructure"
	"github.com/lintang-b-s/bestpath/pkg/engine/routing"
	"github.com/lintang-b-s/bestpath/pkg/guidance"
	"github.com/lintang-b-s/bestpath/pkg/terrain"
	"go.uber.org/zap"
)

type Discoverer = terrain.Discoverer

var (
	ErrNoTargets        = terrain.ErrNoTargets
	ErrNoDiscoverer     = terrain.ErrNoDiscoverer
	ErrPathConstruction = errors.New("engine: could not build paths")
)

type PlanRequest struct {
	Known      []da.KnownCell
	Targets    []da.Coordinate
	Start      da.Coordinate
	Discover   bool
	Discoverer Discoverer
}

type Segment struct {
	Target     da.Coordinate   `json:"target"`
	Directions []pkg.Direction `json:"directions"`
	Cells      []da.Coordinate `json:"cells"`
	Cost       int64           `json:"cost"`
}

type Plan struct {
	Segments       []Segment       `json:"segments"`
	Unreachable    []da.Coordinate `json:"unreachable"`
	Discovered     []da.KnownCell  `json:"discovered"`
	DiscoveryCalls int             `json:"discovery_calls"`
	Estimated      int             `json:"estimated"`
	Origin         da.Coordinate   `json:"origin"`
}

// Directions the bare move lists, one per segment.
func (p *Plan) Directions() [][]pkg.Direction {
	out := make([][]pkg.Direction, len(p.Segments))
	for i, s := range p.Segments {
		out[i] = s.Directions
	}
	return out
}

type Option func(*Planner)

func WithHeapArity(d int) Option {
	return func(p *Planner) {
		p.heapArity = d
	}
}

func WithDiscoverer(d Discoverer) Option {
	return func(p *Planner) {
		p.discoverer = d
	}
}

func withTranslator(newTranslator func(tr da.Transform) routing.DirectionTranslator) Option {
	return func(p *Planner) {
		p.newTranslator = newTranslator
	}
}

func newDirectionBuilder(tr da.Transform) routing.DirectionTranslator {
	return guidance.NewDirectionBuilder(tr)
}

// Planner is stateless between calls; one Plan call owns its matrix and graph.
type Planner struct {
	logger        *zap.Logger
	heapArity     int
	discoverer    Discoverer
	newTranslator func(tr da.Transform) routing.DirectionTranslator
}

func NewPlanner(logger *zap.Logger, opts ...Option) *Planner {
	p := &Planner{
		logger:        logger,
		heapArity:     pkg.DEFAULT_HEAP_ARITY,
		newTranslator: newDirectionBuilder,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan computes the visiting order and moves for req.Targets starting at req.Start.
func (p *Planner) Plan(ctx context.Context, req PlanRequest) (*Plan, error) {
	matrix, tr, err := terrain.Normalize(req.Known, req.Targets, req.Start)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("grid normalized",
		zap.Int("rows", tr.Rows()), zap.Int("cols", tr.Cols()),
		zap.String("origin", tr.GetOrigin().String()),
		zap.Int("known", matrix.NumberOfKnown()))

	plan := &Plan{
		Segments:    make([]Segment, 0, len(req.Targets)),
		Unreachable: make([]da.Coordinate, 0),
		Discovered:  make([]da.KnownCell, 0),
		Origin:      tr.GetOrigin(),
	}

	if req.Discover {
		discoverer := req.Discoverer
		if discoverer == nil {
			discoverer = p.discoverer
		}
		if discoverer == nil {
			return nil, ErrNoDiscoverer
		}
		stats, err := terrain.Fill(ctx, matrix, tr, discoverer, p.logger)
		if err != nil {
			return nil, err
		}
		plan.Discovered = stats.Discovered
		plan.DiscoveryCalls = len(stats.Discovered)
		plan.Estimated = stats.Estimated
	}

	targetCells := make([]da.Cell, len(req.Targets))
	for i, t := range req.Targets {
		targetCells[i], _ = tr.ToCell(t)
	}
	startCell, _ := tr.ToCell(req.Start)

	graph, targetIds, startId, err := da.BuildGraph(matrix, tr, targetCells, startCell)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPathConstruction, err)
	}

	reachable, dropped := da.ReachableTargets(graph, startId, targetIds)
	for _, i := range dropped {
		plan.Unreachable = append(plan.Unreachable, req.Targets[i])
	}
	p.logger.Debug("targets filtered",
		zap.Int("reachable", len(reachable)), zap.Int("unreachable", len(dropped)))

	router := routing.NewRouter(graph, p.heapArity, p.newTranslator(graph.GetTransform()), p.logger)
	routed, err := router.Route(startId, reachable)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPathConstruction, err)
	}

	for _, seg := range routed {
		target, ok := tr.IndexToWorld(seg.Result.Target)
		if !ok {
			return nil, fmt.Errorf("%w: vertex %d has no coordinate", ErrPathConstruction, seg.Result.Target)
		}
		cells := make([]da.Coordinate, 0, len(seg.Result.Path))
		for _, v := range seg.Result.Path {
			c, ok := tr.IndexToWorld(v)
			if !ok {
				return nil, fmt.Errorf("%w: vertex %d has no coordinate", ErrPathConstruction, v)
			}
			cells = append(cells, c)
		}
		plan.Segments = append(plan.Segments, Segment{
			Target:     target,
			Directions: seg.Directions,
			Cells:      cells,
			Cost:       seg.Result.TotalCost,
		})
	}

	return plan, nil
}

// ShortestPath is the compact entry point. A failure while building paths yields the
// sentinel [][]Direction{{}} together with the error; precondition and discovery failures
// yield nil.
func (p *Planner) ShortestPath(ctx context.Context, known []da.KnownCell, targets []da.Coordinate,
	start da.Coordinate, discover bool) ([][]pkg.Direction, error) {
	plan, err := p.Plan(ctx, PlanRequest{
		Known:    known,
		Targets:  targets,
		Start:    start,
		Discover: discover,
	})
	if err != nil {
		if errors.Is(err, ErrPathConstruction) {
			p.logger.Error("path construction failed", zap.Error(err))
			return [][]pkg.Direction{{}}, err
		}
		return nil, err
	}
	return plan.Directions(), nil
}
