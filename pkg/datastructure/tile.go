package datastructure

import (
	"github.com/lintang-b-s/bestpath/pkg"
)

type Tile struct {
	Type      pkg.TileType `json:"type" yaml:"type"`
	Elevation uint32       `json:"elevation" yaml:"elevation"`
	Content   string       `json:"content,omitempty" yaml:"content,omitempty"`
}

func NewTile(tileType pkg.TileType, elevation uint32) Tile {
	return Tile{Type: tileType, Elevation: elevation}
}

func NewTileWithContent(tileType pkg.TileType, elevation uint32, content string) Tile {
	return Tile{Type: tileType, Elevation: elevation, Content: content}
}

// ImpassableTile. tile used for every cell nobody told us about.
func ImpassableTile() Tile {
	return Tile{Type: pkg.LAVA}
}

func (t Tile) IsWalkable() bool {
	switch t.Type {
	case pkg.DEEP_WATER, pkg.LAVA, pkg.WALL:
		return false
	default:
		return true
	}
}

// Cost. cost of stepping onto this tile, not counting the elevation penalty.
func (t Tile) Cost() int64 {
	switch t.Type {
	case pkg.DEEP_WATER, pkg.LAVA, pkg.WALL:
		return pkg.IMPASSABLE_COST
	case pkg.STREET, pkg.GRASS, pkg.TELEPORT:
		return 1
	case pkg.SAND:
		return 2
	case pkg.SHALLOW_WATER:
		return 3
	case pkg.HILL:
		return 4
	case pkg.SNOW:
		return 5
	case pkg.MOUNTAIN:
		return 6
	default:
		return pkg.IMPASSABLE_COST
	}
}

// ElevationPenalty. squared climb when moving from src onto t, 0 when not going up.
func (t Tile) ElevationPenalty(src Tile) int64 {
	if t.Elevation <= src.Elevation {
		return 0
	}
	diff := int64(t.Elevation - src.Elevation)
	return diff * diff
}

func (t Tile) HasContent() bool {
	return t.Content != ""
}
