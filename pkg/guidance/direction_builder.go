package guidance

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/bestpath/pkg"
	"github.com/lintang-b-s/bestpath/pkg/datastructure"
)

var ErrInvalidStep = errors.New("guidance: consecutive path vertices are not orthogonal neighbours")

type DirectionBuilder struct {
	coordinates CoordinateMap
}

func NewDirectionBuilder(coordinates CoordinateMap) *DirectionBuilder {
	return &DirectionBuilder{coordinates: coordinates}
}

// PathToDirections turns a vertex path into unit moves. Any step that is not exactly one
// row or one column is an error, nothing is guessed.
func (db *DirectionBuilder) PathToDirections(path []datastructure.Index) ([]pkg.Direction, error) {
	directions := make([]pkg.Direction, 0, len(path))
	if len(path) == 0 {
		return directions, nil
	}

	for i := 1; i < len(path); i++ {
		cur, ok := db.coordinates.IndexToCell(path[i-1])
		if !ok {
			return nil, fmt.Errorf("%w: vertex %d has no coordinate", ErrInvalidStep, path[i-1])
		}
		next, ok := db.coordinates.IndexToCell(path[i])
		if !ok {
			return nil, fmt.Errorf("%w: vertex %d has no coordinate", ErrInvalidStep, path[i])
		}

		dir, err := StepDirection(next.Row-cur.Row, next.Col-cur.Col)
		if err != nil {
			return nil, fmt.Errorf("%w: %v -> %v", err, cur, next)
		}
		directions = append(directions, dir)
	}

	return directions, nil
}

func StepDirection(dRow, dCol int) (pkg.Direction, error) {
	switch {
	case dRow == -1 && dCol == 0:
		return pkg.UP, nil
	case dRow == 1 && dCol == 0:
		return pkg.DOWN, nil
	case dRow == 0 && dCol == -1:
		return pkg.LEFT, nil
	case dRow == 0 && dCol == 1:
		return pkg.RIGHT, nil
	default:
		return pkg.UP, ErrInvalidStep
	}
}
