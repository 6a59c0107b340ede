package usecases

import (
	"context"
	"errors"

	"github.com/lintang-b-s/bestpath/pkg"
	da "github.com/lintang-b-s/bestpath/pkg/datastructure"
	"github.com/lintang-b-s/bestpath/pkg/engine"
	"github.com/lintang-b-s/bestpath/pkg/terrain"
	"github.com/lintang-b-s/bestpath/pkg/util"
	"github.com/lintang-b-s/bestpath/pkg/world"
	"github.com/twpayne/go-polyline"
	"go.uber.org/zap"
)

var (
	ErrNoTargetsResolved = errors.New("no targets given and no point of interest near the start")
	ErrPlanFailed        = errors.New("failed to plan a path")
)

type PlanInput struct {
	Start   da.Coordinate
	Targets []da.Coordinate
	// used only when Targets is empty.
	InterestRadius int
	// nil means the explored part of the world is the knowledge.
	Known    []da.KnownCell
	Discover bool
}

type SegmentOutput struct {
	Target     da.Coordinate
	Directions []pkg.Direction
	Cells      []da.Coordinate
	Polyline   string
	Cost       int64
}

type PlanOutput struct {
	Targets        []da.Coordinate
	Segments       []SegmentOutput
	Unreachable    []da.Coordinate
	Discovered     []da.KnownCell
	DiscoveryCalls int
	Estimated      int
}

type WorldInfo struct {
	Rows             int
	Cols             int
	Explored         int
	DiscoverCalls    int
	PointsOfInterest int
}

type PlannerService struct {
	log          *zap.Logger
	engine       PlannerEngine
	store        WorldStore
	spatialIndex SpatialIndex
	searchRadius int
}

func NewPlannerService(log *zap.Logger, engine PlannerEngine, store WorldStore, spatialIndex SpatialIndex,
	searchRadius int) *PlannerService {
	return &PlannerService{
		log:          log,
		engine:       engine,
		store:        store,
		spatialIndex: spatialIndex,
		searchRadius: searchRadius,
	}
}

func (ps *PlannerService) Plan(ctx context.Context, in PlanInput) (*PlanOutput, error) {
	if err := ps.checkInWorld(in); err != nil {
		return nil, err
	}
	targets, err := ps.resolveTargets(in)
	if err != nil {
		return nil, err
	}

	known := in.Known
	if known == nil {
		known = ps.store.Explored()
	}

	plan, err := ps.engine.Plan(ctx, engine.PlanRequest{
		Known:      known,
		Targets:    targets,
		Start:      in.Start,
		Discover:   in.Discover,
		Discoverer: ps.store,
	})
	if err != nil {
		return nil, ps.translatePlanError(err)
	}

	out := &PlanOutput{
		Targets:        targets,
		Segments:       make([]SegmentOutput, 0, len(plan.Segments)),
		Unreachable:    plan.Unreachable,
		Discovered:     plan.Discovered,
		DiscoveryCalls: plan.DiscoveryCalls,
		Estimated:      plan.Estimated,
	}
	for _, seg := range plan.Segments {
		out.Segments = append(out.Segments, SegmentOutput{
			Target:     seg.Target,
			Directions: seg.Directions,
			Cells:      seg.Cells,
			Polyline:   EncodeCells(seg.Cells),
			Cost:       seg.Cost,
		})
	}

	ps.log.Debug("plan served",
		zap.Int("targets", len(targets)),
		zap.Int("segments", len(out.Segments)),
		zap.Int("unreachable", len(out.Unreachable)))
	return out, nil
}

// checkInWorld rejects coordinates the world does not contain, so the planning grid stays
// bounded by the world size.
func (ps *PlannerService) checkInWorld(in PlanInput) error {
	rows, cols := ps.store.Rows(), ps.store.Cols()
	inWorld := func(c da.Coordinate) bool {
		return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
	}

	if !inWorld(in.Start) {
		return util.WrapErrorf(world.ErrOutOfWorld, util.ErrBadParamInput,
			"start %v outside the %dx%d world", in.Start, rows, cols)
	}
	for _, t := range in.Targets {
		if !inWorld(t) {
			return util.WrapErrorf(world.ErrOutOfWorld, util.ErrBadParamInput,
				"target %v outside the %dx%d world", t, rows, cols)
		}
	}
	for _, k := range in.Known {
		if !inWorld(k.Coordinate) {
			return util.WrapErrorf(world.ErrOutOfWorld, util.ErrBadParamInput,
				"known cell %v outside the %dx%d world", k.Coordinate, rows, cols)
		}
	}
	return nil
}

func (ps *PlannerService) resolveTargets(in PlanInput) ([]da.Coordinate, error) {
	if len(in.Targets) > 0 {
		return in.Targets, nil
	}

	radius := in.InterestRadius
	if radius <= 0 {
		radius = ps.searchRadius
	}
	pois := ps.spatialIndex.SearchWithinRadius(in.Start, radius)
	targets := make([]da.Coordinate, 0, len(pois))
	for _, poi := range pois {
		if poi.GetCoordinate() == in.Start {
			continue
		}
		targets = append(targets, poi.GetCoordinate())
	}
	if len(targets) == 0 {
		return nil, util.WrapErrorf(ErrNoTargetsResolved, util.ErrBadParamInput,
			"no point of interest within %d cells of %v", radius, in.Start)
	}
	return targets, nil
}

func (ps *PlannerService) translatePlanError(err error) error {
	switch {
	case errors.Is(err, terrain.ErrNoTargets),
		errors.Is(err, da.ErrCellOutOfBounds),
		errors.Is(err, da.ErrMatrixTooLarge),
		errors.Is(err, world.ErrOutOfWorld):
		return util.WrapErrorf(err, util.ErrBadParamInput, "invalid plan request")
	default:
		ps.log.Error("plan failed", zap.Error(err))
		return util.WrapErrorf(err, util.ErrInternalServerError, "%s", ErrPlanFailed.Error())
	}
}

func (ps *PlannerService) Reveal(center da.Coordinate, radius int) []da.KnownCell {
	return ps.store.Reveal(center, radius)
}

func (ps *PlannerService) World() WorldInfo {
	return WorldInfo{
		Rows:             ps.store.Rows(),
		Cols:             ps.store.Cols(),
		Explored:         ps.store.NumberOfExplored(),
		DiscoverCalls:    ps.store.DiscoverCalls(),
		PointsOfInterest: ps.spatialIndex.Len(),
	}
}

// EncodeCells. polyline of a cell path, rows as the first dimension and columns as the second.
func EncodeCells(cells []da.Coordinate) string {
	coords := make([][]float64, len(cells))
	for i, c := range cells {
		coords[i] = []float64{float64(c.Row), float64(c.Col)}
	}
	return string(polyline.EncodeCoords(coords))
}

func DecodeCells(s string) ([]da.Coordinate, error) {
	coords, _, err := polyline.DecodeCoords([]byte(s))
	if err != nil {
		return nil, err
	}
	cells := make([]da.Coordinate, len(coords))
	for i, c := range coords {
		cells[i] = da.NewCoordinate(roundToInt(c[0]), roundToInt(c[1]))
	}
	return cells, nil
}

func roundToInt(f float64) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}
