// Package world holds the ground-truth grid an agent explores. It answers discovery requests
// of the planner and remembers which cells have been explored.
package world

import (
	"context"
	"errors"
	"fmt"
	"sync"

	da "github.com/lintang-b-s/bestpath/pkg/datastructure"
	"github.com/lintang-b-s/bestpath/pkg/util"
)

var (
	ErrEmptyWorld     = errors.New("world: grid must have at least one row and one column")
	ErrNonRectangular = errors.New("world: all rows must have the same length")
	ErrOutOfWorld     = errors.New("world: coordinate outside the world")
)

type Store struct {
	mu            sync.RWMutex
	rows, cols    int
	tiles         []da.Tile
	explored      []bool
	discoverCalls int
}

// NewStore copies tiles, tiles[row][col]. Nothing is explored yet.
func NewStore(tiles [][]da.Tile) (*Store, error) {
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return nil, ErrEmptyWorld
	}
	rows, cols := len(tiles), len(tiles[0])
	flat := make([]da.Tile, 0, rows*cols)
	for _, row := range tiles {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		flat = append(flat, row...)
	}
	return &Store{
		rows:     rows,
		cols:     cols,
		tiles:    flat,
		explored: make([]bool, rows*cols),
	}, nil
}

func (s *Store) Rows() int {
	return s.rows
}

func (s *Store) Cols() int {
	return s.cols
}

func (s *Store) inBounds(c da.Coordinate) bool {
	return c.Row >= 0 && c.Row < s.rows && c.Col >= 0 && c.Col < s.cols
}

func (s *Store) offset(c da.Coordinate) int {
	return c.Row*s.cols + c.Col
}

func (s *Store) TileAt(c da.Coordinate) (da.Tile, bool) {
	if !s.inBounds(c) {
		return da.Tile{}, false
	}
	return s.tiles[s.offset(c)], true
}

// DiscoverTiles reveals the requested cells and marks them explored. The whole request fails
// if any coordinate lies outside the world.
func (s *Store) DiscoverTiles(ctx context.Context, coords []da.Coordinate) (map[da.Coordinate]da.Tile, error) {
	if util.StopConcurrentOperation(ctx) {
		return nil, ctx.Err()
	}
	for _, c := range coords {
		if !s.inBounds(c) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfWorld, c)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.discoverCalls++
	res := make(map[da.Coordinate]da.Tile, len(coords))
	for _, c := range coords {
		i := s.offset(c)
		s.explored[i] = true
		res[c] = s.tiles[i]
	}
	return res, nil
}

// Reveal marks every cell within Chebyshev distance radius of center as explored and
// returns the newly explored ones.
func (s *Store) Reveal(center da.Coordinate, radius int) []da.KnownCell {
	s.mu.Lock()
	defer s.mu.Unlock()

	revealed := make([]da.KnownCell, 0)
	for row := center.Row - radius; row <= center.Row+radius; row++ {
		for col := center.Col - radius; col <= center.Col+radius; col++ {
			c := da.NewCoordinate(row, col)
			if !s.inBounds(c) {
				continue
			}
			i := s.offset(c)
			if s.explored[i] {
				continue
			}
			s.explored[i] = true
			revealed = append(revealed, da.NewKnownCell(c, s.tiles[i]))
		}
	}
	return revealed
}

// Explored returns the explored cells in row-major order.
func (s *Store) Explored() []da.KnownCell {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cells := make([]da.KnownCell, 0)
	for i, ok := range s.explored {
		if ok {
			cells = append(cells, da.NewKnownCell(da.NewCoordinate(i/s.cols, i%s.cols), s.tiles[i]))
		}
	}
	return cells
}

func (s *Store) NumberOfExplored() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, ok := range s.explored {
		if ok {
			n++
		}
	}
	return n
}

func (s *Store) DiscoverCalls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.discoverCalls
}

// PointsOfInterest every tile carrying content, row-major.
func (s *Store) PointsOfInterest() []da.KnownCell {
	pois := make([]da.KnownCell, 0)
	for i, t := range s.tiles {
		if t.HasContent() {
			pois = append(pois, da.NewKnownCell(da.NewCoordinate(i/s.cols, i%s.cols), t))
		}
	}
	return pois
}

// Grid returns a copy of the tiles as rows.
func (s *Store) Grid() [][]da.Tile {
	grid := make([][]da.Tile, s.rows)
	for row := 0; row < s.rows; row++ {
		grid[row] = make([]da.Tile, s.cols)
		copy(grid[row], s.tiles[row*s.cols:(row+1)*s.cols])
	}
	return grid
}
