// Package dfs defines types and options for depth-first search over a
// gridgraph.Grid, including pre-order hooks and neighbor filtering.
package dfs

import (
	"errors"

	"github.com/katalvlaran/gridpath/gridgraph"
)

var (
	// ErrGridNil is returned when a nil *gridgraph.Grid is passed to Search.
	ErrGridNil = errors.New("dfs: grid is nil")
)

// Option configures optional behavior of DFS traversal.
// Use with Search(g, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V) when filters and hooks are O(1).
type Options struct {
	// OnPush, if non-nil, is invoked when a cell is first discovered and
	// pushed onto the stack.
	OnPush func(c gridgraph.Coord)

	// OnVisit, if non-nil, is invoked when a cell is popped and marked visited.
	// Returning an error aborts traversal with that error.
	OnVisit func(c gridgraph.Coord) error

	// FilterNeighbor, if non-nil, is called for each open step before push.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(curr, neighbor gridgraph.Coord) bool
}

// DefaultOptions returns Options with no hooks and no neighbor filtering.
func DefaultOptions() Options {
	return Options{}
}

// WithOnPush returns an Option that installs fn as a discovery hook.
func WithOnPush(fn func(c gridgraph.Coord)) Option {
	return func(o *Options) {
		o.OnPush = fn
	}
}

// WithOnVisit returns an Option that installs fn as a visit hook.
// The hook is called when a cell is popped from the stack.
func WithOnVisit(fn func(c gridgraph.Coord) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithFilterNeighbor returns an Option that filters steps.
// If fn(curr, neighbor) == false, that neighbor is not pushed from curr.
func WithFilterNeighbor(fn func(curr, neighbor gridgraph.Coord) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}
