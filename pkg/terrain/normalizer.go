package terrain

import (
	"fmt"

	da "github.com/lintang-b-s/bestpath/pkg/datastructure"
)

// Normalize builds the dense matrix spanning the bounding box of known cells, targets and start.
// Every cell starts impassable and unknown; known cells are then written in order (a later
// record for the same coordinate wins) and marked known.
func Normalize(known []da.KnownCell, targets []da.Coordinate, start da.Coordinate) (*da.Matrix, da.Transform, error) {
	if len(targets) == 0 {
		return nil, da.Transform{}, ErrNoTargets
	}

	bb := da.NewEmptyBoundingBox()
	bb.Extend(start)
	for _, t := range targets {
		bb.Extend(t)
	}
	for _, k := range known {
		bb.Extend(k.Coordinate)
	}

	rows, cols := bb.Rows(), bb.Cols()
	if rows <= 0 || cols <= 0 {
		// span overflowed int
		return nil, da.Transform{}, fmt.Errorf("%w: box %v..%v", da.ErrMatrixTooLarge, bb.GetMin(), bb.GetMax())
	}
	m, err := da.NewMatrix(rows, cols, da.ImpassableTile())
	if err != nil {
		return nil, da.Transform{}, err
	}
	tr := da.NewTransform(bb.GetMin(), rows, cols)

	for _, k := range known {
		cell, _ := tr.ToCell(k.Coordinate)
		m.Set(cell.Row, cell.Col, k.Tile, true)
	}

	return m, tr, nil
}
