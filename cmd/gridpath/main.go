// Command gridpath loads or builds a grid, optionally draws a maze on it,
// runs a search and prints the board with the visited cells and the path.
//
// Usage:
//
//	gridpath -scenario board.yaml
//	gridpath -rows 21 -cols 41 -maze recursive-division -seed 7 -alg astar
//	gridpath -rows 21 -cols 41 -maze kruskal -all -save out.yaml
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/search"
)

func main() {
	// Command line flags
	scenarioPath := flag.String("scenario", "", "YAML scenario file (overrides the board flags)")
	rows := flag.Int("rows", 15, "number of rows")
	cols := flag.Int("cols", 31, "number of columns")
	startFlag := flag.String("start", "", `start cell "row,col" (default top-left interior cell)`)
	endFlag := flag.String("end", "", `end cell "row,col" (default bottom-right interior cell)`)
	algFlag := flag.String("alg", "", "search algorithm: bfs, dfs, dijkstra, astar, greedy")
	all := flag.Bool("all", false, "run every algorithm and print a summary")
	mazeFlag := flag.String("maze", "", "maze generator: recursive-division, prim, kruskal")
	gap := flag.Int("gap", 0, "passage width for recursive division")
	retries := flag.Int("retries", 0, "maximum maze attempts")
	seed := flag.Int64("seed", 0, "maze seed (0 = time-seeded)")
	savePath := flag.String("save", "", "write the final board as a YAML scenario")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("gridpath: ")

	sc, err := loadScenario(*scenarioPath, *rows, *cols, *startFlag, *endFlag)
	if err != nil {
		log.Fatalf("Failed to load scenario: %v", err)
	}
	if *algFlag != "" {
		sc.Algorithm = *algFlag
	}
	if *mazeFlag != "" {
		sc.Maze = &scenario.MazeConfig{Kind: *mazeFlag, Gap: *gap, Retries: *retries, Seed: *seed}
	}
	if err := sc.Validate(); err != nil {
		log.Fatalf("Invalid scenario: %v", err)
	}

	g, err := sc.Build()
	if err != nil {
		log.Fatalf("Failed to build grid: %v", err)
	}

	if err := applyMaze(g, sc); err != nil {
		log.Fatalf("Maze generation failed: %v", err)
	}

	alg, err := sc.SearchAlgorithm()
	if err != nil {
		log.Fatalf("Invalid algorithm: %v", err)
	}

	if *all {
		if err := compare(g); err != nil {
			log.Fatalf("Search failed: %v", err)
		}
	} else {
		if err := runOne(g, alg); err != nil {
			log.Fatalf("Search failed: %v", err)
		}
	}

	if *savePath != "" {
		if err := save(*savePath, g, alg); err != nil {
			log.Fatalf("Failed to save scenario: %v", err)
		}
		log.Printf("Scenario written: %s", *savePath)
	}
}

// loadScenario reads path, or describes a blank board from the flags.
func loadScenario(path string, rows, cols int, start, end string) (*scenario.Scenario, error) {
	if path != "" {
		return scenario.Load(path)
	}

	sc := &scenario.Scenario{Rows: rows, Cols: cols, Algorithm: scenario.DefaultAlgorithm}
	s, err := pointFlag(start, min(1, rows-1), min(1, cols-1))
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	e, err := pointFlag(end, max(rows-2, 0), max(cols-2, 0))
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	sc.Start, sc.End = s, e

	return sc, nil
}

// pointFlag parses "row,col", falling back to the given default.
func pointFlag(v string, row, col int) (*scenario.Point, error) {
	if v == "" {
		return &scenario.Point{Row: row, Col: col}, nil
	}
	parts := strings.Split(v, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("want row,col, got %q", v)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("row: %w", err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("col: %w", err)
	}

	return &scenario.Point{Row: r, Col: c}, nil
}

func applyMaze(g *gridgraph.Grid, sc *scenario.Scenario) error {
	opts, err := sc.MazeOptions()
	if err != nil || opts == nil {
		return err
	}
	startT := time.Now()
	res, err := maze.Generate(g, opts...)
	if err != nil {
		return err
	}
	log.Printf("Maze %s: %d walls, %d attempt(s), seed %d, %v",
		res.Kind, len(res.Walls), res.Attempts, res.Seed, time.Since(startT))

	return nil
}

func runOne(g *gridgraph.Grid, alg search.Algorithm) error {
	out, err := search.Run(g, alg, true)
	if err != nil {
		return err
	}
	fmt.Println(g)
	if out.Found {
		fmt.Printf("%s: visited %d cells, path %d steps\n", alg, len(out.Order), len(out.Path)-1)
	} else {
		fmt.Printf("%s: visited %d cells, end unreachable\n", alg, len(out.Order))
	}

	return nil
}

// compare runs every algorithm on the same board. Each run resets the
// board's search state, so the order of runs does not matter.
func compare(g *gridgraph.Grid) error {
	fmt.Println(g)
	fmt.Printf("%-10s %8s %6s %s\n", "algorithm", "visited", "steps", "time")
	for _, alg := range search.Algorithms {
		startT := time.Now()
		out, err := search.Run(g, alg, false)
		if err != nil {
			return err
		}
		steps := "-"
		if out.Found {
			steps = strconv.Itoa(len(out.Path) - 1)
		}
		fmt.Printf("%-10s %8d %6s %v\n", alg, len(out.Order), steps, time.Since(startT))
	}

	return nil
}

func save(path string, g *gridgraph.Grid, alg search.Algorithm) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := scenario.FromGrid(g, alg).Encode(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
