package routing

import (
	"github.com/lintang-b-s/bestpath/pkg"
	"github.com/lintang-b-s/bestpath/pkg/datastructure"
)

type DirectionTranslator interface {
	PathToDirections(path []datastructure.Index) ([]pkg.Direction, error)
}
