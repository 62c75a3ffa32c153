// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on a gridgraph.Grid.
//
// Dijkstra computes the minimum-cost path from the grid's start node to its
// end node under a non-negative step-cost function. The default step cost is
// uniform (1 per orthogonal move), but any StepCost may be supplied.
//
// Complexity:
//
//	– Time:  O(V log V)   where V = W×H cells (each cell has at most 4 steps)
//	   • Each cell is extracted from the priority queue at most once.
//	   • Each relaxation may push into the priority queue (lazy decrease-key).
//	– Space: O(V)
//
// Options:
//
//	– StepCost:    cost of moving between two orthogonal neighbors.
//	– MaxDistance: optional cap on distances to explore; cells beyond this are skipped.
//	– OnVisit:     hook called when a cell is finalized.
//
// Errors (sentinel):
//
//	– ErrNilGrid         if the provided grid pointer is nil.
//	– ErrNegativeWeight  if StepCost returns a negative or NaN value.
//	– ErrBadMaxDistance  if MaxDistance < 0.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Search.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrNegativeWeight indicates that the step-cost function produced a
	// negative (or NaN) weight.
	ErrNegativeWeight = errors.New("dijkstra: negative step cost encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// StepCost returns the cost of moving from one cell to an adjacent cell.
type StepCost func(from, to gridgraph.Coord) float64

// UniformCost charges 1 for every orthogonal step.
func UniformCost(_, _ gridgraph.Coord) float64 { return 1 }

// Options configures the behavior of the Dijkstra algorithm.
//
// StepCost    – edge weight function; must return values ≥ 0. Default UniformCost.
// MaxDistance – optional cap on distances to explore (cells beyond are skipped).
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// OnVisit     – called when a cell is popped and finalized; an error aborts.
type Options struct {
	StepCost    StepCost
	MaxDistance float64
	OnVisit     func(c gridgraph.Coord, dist float64) error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithStepCost sets the step-cost function. A nil fn keeps UniformCost.
func WithStepCost(fn StepCost) Option {
	return func(o *Options) {
		if fn != nil {
			o.StepCost = fn
		}
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values cause ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithOnVisit registers a hook invoked when a cell's distance becomes final.
func WithOnVisit(fn func(c gridgraph.Coord, dist float64) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - StepCost:    UniformCost (1 per step).
//   - MaxDistance: +Inf (no distance limit; explore all reachable).
//   - OnVisit:     nil.
func DefaultOptions() Options {
	return Options{
		StepCost:    UniformCost,
		MaxDistance: math.Inf(1),
	}
}
