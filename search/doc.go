// Package search is the registry over the traversal packages.
//
// Each Algorithm value names one traversal (bfs, dfs, dijkstra, astar,
// greedy) and resolves to a Func running it with default options. Run adds
// path reconstruction and can apply the outcome to the grid's search states.
//
//	alg, _ := search.ParseAlgorithm("dijkstra")
//	out, err := search.Run(g, alg, true)
//	fmt.Println(out.Path)
//	fmt.Println(g) // ASCII dump with visited and path cells
package search
