package guidance

import (
	"github.com/lintang-b-s/bestpath/pkg"
	"github.com/lintang-b-s/bestpath/pkg/datastructure"
)

// Step moves c one cell towards dir.
func Step(c datastructure.Coordinate, dir pkg.Direction) datastructure.Coordinate {
	switch dir {
	case pkg.UP:
		return c.Add(-1, 0)
	case pkg.DOWN:
		return c.Add(1, 0)
	case pkg.LEFT:
		return c.Add(0, -1)
	case pkg.RIGHT:
		return c.Add(0, 1)
	default:
		return c
	}
}

// Replay follows directions from start and returns every visited coordinate, start included.
func Replay(start datastructure.Coordinate, directions []pkg.Direction) []datastructure.Coordinate {
	cells := make([]datastructure.Coordinate, 0, len(directions)+1)
	cells = append(cells, start)
	cur := start
	for _, d := range directions {
		cur = Step(cur, d)
		cells = append(cells, cur)
	}
	return cells
}
