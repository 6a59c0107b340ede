// Package scenario loads planning scenarios from YAML files: a ground-truth world, what the
// agent already knows about it, where it stands and what it wants to visit.
package scenario

import (
	"errors"
	"fmt"
	"os"

	da "github.com/lintang-b-s/bestpath/pkg/datastructure"
	"github.com/lintang-b-s/bestpath/pkg/engine"
	"github.com/lintang-b-s/bestpath/pkg/world"
	"gopkg.in/yaml.v3"
)

var ErrNoWorld = errors.New("scenario: discovery or reveal requested but the scenario has no world")

type Scenario struct {
	Name           string          `yaml:"name"`
	World          []string        `yaml:"world"`
	Elevation      []string        `yaml:"elevation"`
	Known          []string        `yaml:"known"`
	KnownElevation []string        `yaml:"known_elevation"`
	KnownOrigin    da.Coordinate   `yaml:"known_origin"`
	Start          da.Coordinate   `yaml:"start"`
	Targets        []da.Coordinate `yaml:"targets"`
	Discover       bool            `yaml:"discover"`
	RevealRadius   int             `yaml:"reveal_radius"`
}

func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	return &s, nil
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

func (s *Scenario) HasWorld() bool {
	return len(s.World) > 0
}

// BuildWorld returns nil, nil when the scenario carries no world.
func (s *Scenario) BuildWorld() (*world.Store, error) {
	if !s.HasWorld() {
		return nil, nil
	}
	grid, err := world.ParseGrid(s.World, s.Elevation)
	if err != nil {
		return nil, err
	}
	return world.NewStore(grid)
}

// BuildRequest assembles the planner input. Known cells without their own elevation rows take
// the elevation of the world. Cells revealed around the start are appended to the knowledge
// rows and store serves discovery when Discover is set.
func (s *Scenario) BuildRequest(store *world.Store) (engine.PlanRequest, error) {
	known, err := world.ParseKnown(s.Known, s.KnownElevation, s.KnownOrigin)
	if err != nil {
		return engine.PlanRequest{}, err
	}
	if len(s.KnownElevation) == 0 && store != nil {
		for i := range known {
			if tile, ok := store.TileAt(known[i].Coordinate); ok {
				known[i].Tile.Elevation = tile.Elevation
			}
		}
	}

	if s.RevealRadius > 0 {
		if store == nil {
			return engine.PlanRequest{}, ErrNoWorld
		}
		store.Reveal(s.Start, s.RevealRadius)
		known = append(known, store.Explored()...)
	}

	req := engine.PlanRequest{
		Known:    known,
		Targets:  s.Targets,
		Start:    s.Start,
		Discover: s.Discover,
	}
	if s.Discover {
		if store == nil {
			return engine.PlanRequest{}, ErrNoWorld
		}
		req.Discoverer = store
	}
	return req, nil
}
