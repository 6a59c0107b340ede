package datastructure

import "fmt"

// Matrix is a dense row-major grid of tiles together with the knowledge mask.
// known[i] is true when tiles[i] is ground truth (given by the caller or discovered).
type Matrix struct {
	rows  int
	cols  int
	tiles []Tile
	known []bool
}

// MaxMatrixCells bounds the size of a single planning grid.
const MaxMatrixCells = 1 << 22

// NewMatrix allocates a rows x cols matrix with every cell set to fill and marked unknown.
func NewMatrix(rows, cols int, fill Tile) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyMatrix
	}
	if rows > MaxMatrixCells/cols {
		return nil, fmt.Errorf("%w: %d x %d", ErrMatrixTooLarge, rows, cols)
	}
	tiles := make([]Tile, rows*cols)
	for i := range tiles {
		tiles[i] = fill
	}
	return &Matrix{
		rows:  rows,
		cols:  cols,
		tiles: tiles,
		known: make([]bool, rows*cols),
	}, nil
}

func (m *Matrix) Rows() int {
	return m.rows
}

func (m *Matrix) Cols() int {
	return m.cols
}

func (m *Matrix) Size() int {
	return m.rows * m.cols
}

func (m *Matrix) InBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

func (m *Matrix) offset(row, col int) int {
	return row*m.cols + col
}

// Get returns the tile at (row, col). The caller must check InBounds.
func (m *Matrix) Get(row, col int) Tile {
	return m.tiles[m.offset(row, col)]
}

func (m *Matrix) IsKnown(row, col int) bool {
	return m.known[m.offset(row, col)]
}

// Set overwrites a tile and its knowledge flag.
func (m *Matrix) Set(row, col int, tile Tile, known bool) {
	i := m.offset(row, col)
	m.tiles[i] = tile
	m.known[i] = known
}

func (m *Matrix) NumberOfKnown() int {
	n := 0
	for _, k := range m.known {
		if k {
			n++
		}
	}
	return n
}

// Clone deep-copies tiles and mask.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{
		rows:  m.rows,
		cols:  m.cols,
		tiles: make([]Tile, len(m.tiles)),
		known: make([]bool, len(m.known)),
	}
	copy(c.tiles, m.tiles)
	copy(c.known, m.known)
	return c
}
