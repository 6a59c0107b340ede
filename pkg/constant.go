package pkg

import "fmt"

// enum of tile_type
type TileType uint8

const (
	DEEP_WATER TileType = iota
	SHALLOW_WATER
	SAND
	GRASS
	STREET
	HILL
	MOUNTAIN
	SNOW
	LAVA
	TELEPORT
	WALL
)

const (
	INF_WEIGHT int64 = 1 << 62

	// cost of stepping on a tile that can never be walked on.
	IMPASSABLE_COST int64 = 100000

	DEFAULT_HEAP_ARITY = 4
)

// enum of movement direction on the grid
type Direction uint8

const (
	UP Direction = iota
	DOWN
	LEFT
	RIGHT
)

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	case RIGHT:
		return "right"
	default:
		return "unknown"
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (t TileType) String() string {
	switch t {
	case DEEP_WATER:
		return "deep_water"
	case SHALLOW_WATER:
		return "shallow_water"
	case SAND:
		return "sand"
	case GRASS:
		return "grass"
	case STREET:
		return "street"
	case HILL:
		return "hill"
	case MOUNTAIN:
		return "mountain"
	case SNOW:
		return "snow"
	case LAVA:
		return "lava"
	case TELEPORT:
		return "teleport"
	case WALL:
		return "wall"
	default:
		return "unknown"
	}
}

// GetTileType. parse the tile type name used in the world file & the http api.
func GetTileType(tileType string) (TileType, bool) {
	switch tileType {
	case "deep_water":
		return DEEP_WATER, true
	case "shallow_water":
		return SHALLOW_WATER, true
	case "sand":
		return SAND, true
	case "grass":
		return GRASS, true
	case "street":
		return STREET, true
	case "hill":
		return HILL, true
	case "mountain":
		return MOUNTAIN, true
	case "snow":
		return SNOW, true
	case "lava":
		return LAVA, true
	case "teleport":
		return TELEPORT, true
	case "wall":
		return WALL, true
	default:
		return GRASS, false
	}
}

func (t TileType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TileType) UnmarshalText(text []byte) error {
	tt, ok := GetTileType(string(text))
	if !ok {
		return fmt.Errorf("unknown tile type %q", string(text))
	}
	*t = tt
	return nil
}
