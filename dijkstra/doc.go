// Package dijkstra provides Dijkstra's shortest-path algorithm over a
// gridgraph.Grid with a pluggable, non-negative step cost.
//
// Overview:
//
//   - The start cell has distance 0, every other cell +Inf.
//   - A min-heap frontier is ordered by ascending distance; equal distances
//     pop in push order, which keeps the visit sequence deterministic.
//   - A neighbor's distance (and parent) is updated only when the tentative
//     distance is strictly smaller than the current one.
//   - The search ends when the end cell is popped, whose distance is then
//     minimal, or when the frontier is empty.
//
// When to use:
//
//   - Shortest paths when steps have different costs (terrain, penalties).
//   - With UniformCost it matches BFS path lengths.
//   - As the baseline for astar, which only changes the frontier priority.
//
// Key features:
//
//   - WithStepCost(fn):    replace the uniform step cost.
//   - WithMaxDistance(x):  cells with distance > x are not explored (x ≥ 0).
//   - WithOnVisit(fn):     observe each finalized cell and its distance.
//   - Steps whose cost is +Inf are treated as impassable.
//
// Performance and complexity:
//
//   - Time:  O(V log V) for V = W×H cells.
//   - Space: O(V) for the heap and the run's working copy.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:        nil grid pointer.
//   - ErrNegativeWeight: StepCost produced a negative or NaN value.
//   - ErrBadMaxDistance: WithMaxDistance called with a negative value (panics).
//   - gridgraph.ErrNoStart, ErrNoEnd, ErrSameStartEnd.
//
// Example usage:
//
//	res, err := dijkstra.Search(g, dijkstra.WithStepCost(terrain))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found {
//	    fmt.Println(g.Path(end))
//	}
package dijkstra
