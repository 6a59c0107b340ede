package world

import (
	"fmt"

	"github.com/lintang-b-s/bestpath/pkg"
	da "github.com/lintang-b-s/bestpath/pkg/datastructure"
)

// UnknownSymbol marks a cell nobody knows about in knowledge rows.
const UnknownSymbol = '?'

var symbolTiles = map[rune]pkg.TileType{
	'W': pkg.DEEP_WATER,
	'~': pkg.SHALLOW_WATER,
	':': pkg.SAND,
	'.': pkg.GRASS,
	'=': pkg.STREET,
	'^': pkg.HILL,
	'M': pkg.MOUNTAIN,
	'*': pkg.SNOW,
	'L': pkg.LAVA,
	'T': pkg.TELEPORT,
	'#': pkg.WALL,
}

// ParseSymbol. lowercase letters are grass tiles holding content named after the letter.
func ParseSymbol(r rune) (da.Tile, error) {
	if tt, ok := symbolTiles[r]; ok {
		return da.NewTile(tt, 0), nil
	}
	if r >= 'a' && r <= 'z' {
		return da.NewTileWithContent(pkg.GRASS, 0, string(r)), nil
	}
	return da.Tile{}, fmt.Errorf("world: unknown tile symbol %q", r)
}

// ParseGrid builds tiles from symbol rows. elevation is optional; when given it must have the
// same shape and hold one digit per cell.
func ParseGrid(rows []string, elevation []string) ([][]da.Tile, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyWorld
	}
	if len(elevation) != 0 && len(elevation) != len(rows) {
		return nil, fmt.Errorf("world: %d elevation rows for %d tile rows", len(elevation), len(rows))
	}

	cols := len([]rune(rows[0]))
	grid := make([][]da.Tile, len(rows))
	for r, line := range rows {
		symbols := []rune(line)
		if len(symbols) != cols {
			return nil, ErrNonRectangular
		}
		var elev []rune
		if len(elevation) != 0 {
			elev = []rune(elevation[r])
			if len(elev) != cols {
				return nil, fmt.Errorf("world: elevation row %d: %w", r, ErrNonRectangular)
			}
		}

		grid[r] = make([]da.Tile, cols)
		for c, sym := range symbols {
			tile, err := ParseSymbol(sym)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			if elev != nil {
				if elev[c] < '0' || elev[c] > '9' {
					return nil, fmt.Errorf("world: elevation row %d col %d: %q is not a digit", r, c, elev[c])
				}
				tile.Elevation = uint32(elev[c] - '0')
			}
			grid[r][c] = tile
		}
	}
	return grid, nil
}

// ParseKnown reads knowledge rows ('?' = unknown) placed with their top-left cell at origin.
// Elevation, when given, follows ParseGrid rules; unknown cells ignore it.
func ParseKnown(rows []string, elevation []string, origin da.Coordinate) ([]da.KnownCell, error) {
	if len(elevation) != 0 && len(elevation) != len(rows) {
		return nil, fmt.Errorf("world: %d elevation rows for %d knowledge rows", len(elevation), len(rows))
	}
	known := make([]da.KnownCell, 0)
	for r, line := range rows {
		var elev []rune
		if len(elevation) != 0 {
			elev = []rune(elevation[r])
		}
		for c, sym := range []rune(line) {
			if sym == UnknownSymbol {
				continue
			}
			tile, err := ParseSymbol(sym)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			if c < len(elev) && elev[c] >= '0' && elev[c] <= '9' {
				tile.Elevation = uint32(elev[c] - '0')
			}
			known = append(known, da.NewKnownCell(origin.Add(r, c), tile))
		}
	}
	return known, nil
}
