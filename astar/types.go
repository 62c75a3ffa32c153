// Package astar defines the heuristics, options and sentinel errors shared by
// A* and greedy best-first search on a gridgraph.Grid.
package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNegativeWeight indicates a negative or NaN step cost.
	ErrNegativeWeight = errors.New("astar: negative step cost encountered")

	// ErrBadHeuristic indicates that the heuristic returned a negative or NaN value.
	ErrBadHeuristic = errors.New("astar: heuristic must be non-negative")
)

// Heuristic estimates the remaining cost from a cell to the target.
// For A* to return shortest routes it must never overestimate that cost.
type Heuristic func(from, to gridgraph.Coord) float64

// Euclidean is the straight-line distance between two cells. It is admissible
// on a 4-connected grid whenever every step costs at least 1.
func Euclidean(a, b gridgraph.Coord) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// Manhattan is the taxicab distance. Exact on an open uniform-cost grid.
func Manhattan(a, b gridgraph.Coord) float64 {
	return math.Abs(float64(a.Row-b.Row)) + math.Abs(float64(a.Col-b.Col))
}

// Zero turns A* into Dijkstra.
func Zero(_, _ gridgraph.Coord) float64 { return 0 }

// Options configures A* and Greedy.
//
// Heuristic – estimate to the end cell, computed once per cell at discovery.
// StepCost  – cost of one orthogonal move; ignored by Greedy.
// OnVisit   – called when a cell is expanded; an error aborts the run.
type Options struct {
	Heuristic Heuristic
	StepCost  dijkstra.StepCost
	OnVisit   func(c gridgraph.Coord) error
}

// Option is a functional option.
type Option func(*Options)

// WithHeuristic replaces the Euclidean heuristic. A nil h is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithStepCost replaces the uniform step cost. A nil fn is ignored.
func WithStepCost(fn dijkstra.StepCost) Option {
	return func(o *Options) {
		if fn != nil {
			o.StepCost = fn
		}
	}
}

// WithOnVisit registers a hook run on each expanded cell.
func WithOnVisit(fn func(c gridgraph.Coord) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// DefaultOptions returns Euclidean heuristic and uniform step cost.
func DefaultOptions() Options {
	return Options{
		Heuristic: Euclidean,
		StepCost:  dijkstra.UniformCost,
	}
}
