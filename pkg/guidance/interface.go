package guidance

import "github.com/lintang-b-s/bestpath/pkg/datastructure"

type CoordinateMap interface {
	IndexToCell(idx datastructure.Index) (datastructure.Cell, bool)
}
