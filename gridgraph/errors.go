package gridgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates a non-positive width or height.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")

	// ErrPrecondition is the parent of every start/end validation failure.
	// It is recoverable: the caller should prompt for the missing role.
	ErrPrecondition = errors.New("gridgraph: precondition failed")
	// ErrNoStart indicates that no start node is set.
	ErrNoStart = fmt.Errorf("%w: start node not set", ErrPrecondition)
	// ErrNoEnd indicates that no end node is set.
	ErrNoEnd = fmt.Errorf("%w: end node not set", ErrPrecondition)
	// ErrSameStartEnd indicates that start and end coincide.
	ErrSameStartEnd = fmt.Errorf("%w: start and end are the same node", ErrPrecondition)
)
