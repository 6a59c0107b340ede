package datastructure

import "fmt"

// Coordinate. world coordinate of a grid cell. Row grows downwards, Col grows to the right.
type Coordinate struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

func NewCoordinate(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func (c Coordinate) Add(dRow, dCol int) Coordinate {
	return Coordinate{Row: c.Row + dRow, Col: c.Col + dCol}
}

// KnownCell. ground truth about one world cell.
type KnownCell struct {
	Coordinate Coordinate `json:"coordinate" yaml:"coordinate"`
	Tile       Tile       `json:"tile" yaml:"tile"`
}

func NewKnownCell(c Coordinate, t Tile) KnownCell {
	return KnownCell{Coordinate: c, Tile: t}
}

// Cell. matrix-local position, always inside [0,rows) x [0,cols).
type Cell struct {
	Row int
	Col int
}

func NewCell(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

type BoundingBox struct {
	min, max Coordinate
	empty    bool
}

func NewEmptyBoundingBox() BoundingBox {
	return BoundingBox{empty: true}
}

func (bb *BoundingBox) Extend(c Coordinate) {
	if bb.empty {
		bb.min, bb.max = c, c
		bb.empty = false
		return
	}
	if c.Row < bb.min.Row {
		bb.min.Row = c.Row
	}
	if c.Col < bb.min.Col {
		bb.min.Col = c.Col
	}
	if c.Row > bb.max.Row {
		bb.max.Row = c.Row
	}
	if c.Col > bb.max.Col {
		bb.max.Col = c.Col
	}
}

func (bb BoundingBox) IsEmpty() bool {
	return bb.empty
}

func (bb BoundingBox) GetMin() Coordinate {
	return bb.min
}

func (bb BoundingBox) GetMax() Coordinate {
	return bb.max
}

func (bb BoundingBox) Rows() int {
	if bb.empty {
		return 0
	}
	return bb.max.Row - bb.min.Row + 1
}

func (bb BoundingBox) Cols() int {
	if bb.empty {
		return 0
	}
	return bb.max.Col - bb.min.Col + 1
}

// Transform converts between world coordinates, matrix-local cells and row-major vertex indices.
type Transform struct {
	origin Coordinate
	rows   int
	cols   int
}

func NewTransform(origin Coordinate, rows, cols int) Transform {
	return Transform{origin: origin, rows: rows, cols: cols}
}

func (tr Transform) GetOrigin() Coordinate {
	return tr.origin
}

func (tr Transform) Rows() int {
	return tr.rows
}

func (tr Transform) Cols() int {
	return tr.cols
}

func (tr Transform) InBounds(cell Cell) bool {
	return cell.Row >= 0 && cell.Row < tr.rows && cell.Col >= 0 && cell.Col < tr.cols
}

func (tr Transform) ToCell(c Coordinate) (Cell, bool) {
	cell := Cell{Row: c.Row - tr.origin.Row, Col: c.Col - tr.origin.Col}
	return cell, tr.InBounds(cell)
}

func (tr Transform) ToWorld(cell Cell) Coordinate {
	return Coordinate{Row: cell.Row + tr.origin.Row, Col: cell.Col + tr.origin.Col}
}

func (tr Transform) CellToIndex(cell Cell) Index {
	return Index(cell.Row*tr.cols + cell.Col)
}

func (tr Transform) IndexToCell(idx Index) (Cell, bool) {
	if int(idx) >= tr.rows*tr.cols {
		return Cell{}, false
	}
	return Cell{Row: int(idx) / tr.cols, Col: int(idx) % tr.cols}, true
}

func (tr Transform) IndexToWorld(idx Index) (Coordinate, bool) {
	cell, ok := tr.IndexToCell(idx)
	if !ok {
		return Coordinate{}, false
	}
	return tr.ToWorld(cell), true
}

func (tr Transform) WorldToIndex(c Coordinate) (Index, bool) {
	cell, ok := tr.ToCell(c)
	if !ok {
		return 0, false
	}
	return tr.CellToIndex(cell), true
}
