// Package astar provides A* search and greedy best-first search over a
// gridgraph.Grid.
//
// A* is Dijkstra with the frontier ordered by f = g + h instead of g, where h
// estimates the remaining cost to the end cell. The default heuristic is the
// Euclidean distance, which never overestimates on a 4-connected grid with
// unit steps, so A* returns routes as short as Dijkstra's while usually
// expanding fewer cells.
//
// Greedy orders the frontier by h only. It is fast on open boards and easily
// misled by walls.
//
// Options:
//
//   - WithHeuristic(h): Euclidean (default), Manhattan, Zero or a custom func.
//   - WithStepCost(fn): any dijkstra.StepCost; ignored by Greedy.
//   - WithOnVisit(fn):  observe each expanded cell.
//
// Both functions return the gridgraph precondition errors, ErrNilGrid,
// ErrBadHeuristic, and for A* ErrNegativeWeight. An unreachable end cell is
// reported as Found == false with a nil error.
//
// Example:
//
//	res, err := astar.Search(g, astar.WithHeuristic(astar.Manhattan))
package astar
