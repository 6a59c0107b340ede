package datastructure

import "fmt"

// up, right, down, left
var orthogonalOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// BuildGraph converts the matrix into a directed graph. Only walkable cells get outgoing edges,
// and only towards walkable orthogonal neighbours. The weight of u->v is
// cost(v) + elevation penalty of climbing from u to v.
// targets keep their order and duplicates; every target and the start must lie inside the matrix.
func BuildGraph(m *Matrix, transform Transform, targets []Cell, start Cell) (*Graph, []Index, Index, error) {
	if !m.InBounds(start.Row, start.Col) {
		return nil, nil, INVALID_VERTEX_ID, fmt.Errorf("%w: start %v", ErrCellOutOfBounds, start)
	}
	targetIds := make([]Index, 0, len(targets))
	for _, t := range targets {
		if !m.InBounds(t.Row, t.Col) {
			return nil, nil, INVALID_VERTEX_ID, fmt.Errorf("%w: target %v", ErrCellOutOfBounds, t)
		}
		targetIds = append(targetIds, transform.CellToIndex(t))
	}

	g := NewGraph(transform)
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			tile := m.Get(row, col)
			if !tile.IsWalkable() {
				continue
			}
			u := transform.CellToIndex(NewCell(row, col))
			for _, d := range orthogonalOffsets {
				nRow, nCol := row+d[0], col+d[1]
				if !m.InBounds(nRow, nCol) {
					continue
				}
				next := m.Get(nRow, nCol)
				if !next.IsWalkable() {
					continue
				}
				weight := next.Cost() + next.ElevationPenalty(tile)
				g.AddEdge(u, NewEdge(transform.CellToIndex(NewCell(nRow, nCol)), weight))
			}
		}
	}

	return g, targetIds, transform.CellToIndex(start), nil
}
