package controllers

import (
	"github.com/lintang-b-s/bestpath/pkg"
	da "github.com/lintang-b-s/bestpath/pkg/datastructure"
	"github.com/lintang-b-s/bestpath/pkg/http/usecases"
)

type coordinate struct {
	Row *int `json:"row" validate:"required"`
	Col *int `json:"col" validate:"required"`
}

func (c coordinate) toData() da.Coordinate {
	return da.NewCoordinate(*c.Row, *c.Col)
}

func newCoordinate(c da.Coordinate) coordinate {
	row, col := c.Row, c.Col
	return coordinate{Row: &row, Col: &col}
}

type knownTile struct {
	Coordinate coordinate `json:"coordinate"`
	Type       string     `json:"type" validate:"required,oneof=deep_water shallow_water sand grass street hill mountain snow lava teleport wall"`
	Elevation  uint32     `json:"elevation"`
	Content    string     `json:"content,omitempty"`
}

func (k knownTile) toData() da.KnownCell {
	tileType, _ := pkg.GetTileType(k.Type)
	return da.NewKnownCell(k.Coordinate.toData(), da.NewTileWithContent(tileType, k.Elevation, k.Content))
}

func newKnownTile(k da.KnownCell) knownTile {
	return knownTile{
		Coordinate: newCoordinate(k.Coordinate),
		Type:       k.Tile.Type.String(),
		Elevation:  k.Tile.Elevation,
		Content:    k.Tile.Content,
	}
}

type planRequest struct {
	Start          coordinate   `json:"start"`
	Targets        []coordinate `json:"targets" validate:"required_without=InterestRadius,dive"`
	InterestRadius int          `json:"interest_radius" validate:"omitempty,min=1,max=1000"`
	Known          []knownTile  `json:"known" validate:"omitempty,dive"`
	Discover       bool         `json:"discover"`
}

func (r planRequest) toInput() usecases.PlanInput {
	in := usecases.PlanInput{
		Start:          r.Start.toData(),
		InterestRadius: r.InterestRadius,
		Discover:       r.Discover,
	}
	for _, t := range r.Targets {
		in.Targets = append(in.Targets, t.toData())
	}
	if r.Known != nil {
		in.Known = make([]da.KnownCell, len(r.Known))
		for i, k := range r.Known {
			in.Known[i] = k.toData()
		}
	}
	return in
}

type segmentResponse struct {
	Target     coordinate      `json:"target"`
	Directions []pkg.Direction `json:"directions"`
	Path       string          `json:"path"`
	Cost       int64           `json:"cost"`
}

type planResponse struct {
	Targets        []coordinate      `json:"targets"`
	Segments       []segmentResponse `json:"segments"`
	Unreachable    []coordinate      `json:"unreachable"`
	Discovered     []knownTile       `json:"discovered"`
	DiscoveryCalls int               `json:"discovery_calls"`
	Estimated      int               `json:"estimated"`
}

func NewPlanResponse(out *usecases.PlanOutput) planResponse {
	resp := planResponse{
		Targets:        make([]coordinate, 0, len(out.Targets)),
		Segments:       make([]segmentResponse, 0, len(out.Segments)),
		Unreachable:    make([]coordinate, 0, len(out.Unreachable)),
		Discovered:     make([]knownTile, 0, len(out.Discovered)),
		DiscoveryCalls: out.DiscoveryCalls,
		Estimated:      out.Estimated,
	}
	for _, t := range out.Targets {
		resp.Targets = append(resp.Targets, newCoordinate(t))
	}
	for _, seg := range out.Segments {
		dirs := seg.Directions
		if dirs == nil {
			dirs = []pkg.Direction{}
		}
		resp.Segments = append(resp.Segments, segmentResponse{
			Target:     newCoordinate(seg.Target),
			Directions: dirs,
			Path:       seg.Polyline,
			Cost:       seg.Cost,
		})
	}
	for _, u := range out.Unreachable {
		resp.Unreachable = append(resp.Unreachable, newCoordinate(u))
	}
	for _, k := range out.Discovered {
		resp.Discovered = append(resp.Discovered, newKnownTile(k))
	}
	return resp
}

type revealRequest struct {
	Center coordinate `json:"center"`
	Radius int        `json:"radius" validate:"min=0,max=1000"`
}

type revealResponse struct {
	Revealed []knownTile `json:"revealed"`
}

func NewRevealResponse(cells []da.KnownCell) revealResponse {
	resp := revealResponse{Revealed: make([]knownTile, 0, len(cells))}
	for _, c := range cells {
		resp.Revealed = append(resp.Revealed, newKnownTile(c))
	}
	return resp
}

type worldResponse struct {
	Rows             int `json:"rows"`
	Cols             int `json:"cols"`
	Explored         int `json:"explored"`
	DiscoverCalls    int `json:"discover_calls"`
	PointsOfInterest int `json:"points_of_interest"`
}

func NewWorldResponse(w usecases.WorldInfo) worldResponse {
	return worldResponse{
		Rows:             w.Rows,
		Cols:             w.Cols,
		Explored:         w.Explored,
		DiscoverCalls:    w.DiscoverCalls,
		PointsOfInterest: w.PointsOfInterest,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
