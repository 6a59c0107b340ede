package datastructure

import "errors"

var (
	ErrEmptyMatrix     = errors.New("datastructure: matrix must have at least one row and one column")
	ErrCellOutOfBounds = errors.New("datastructure: cell outside the matrix")
	ErrMatrixTooLarge  = errors.New("datastructure: matrix exceeds the maximum number of cells")
	ErrHeapEmpty       = errors.New("datastructure: heap is empty")
)
