// Package scenario reads and writes grid scenarios as YAML: board size,
// start and end cells, walls, the search algorithm to run and optional maze
// settings.
//
//	rows: 10
//	cols: 20
//	start: [0, 0]
//	end: [9, 19]
//	walls:
//	  - [1, 1]
//	  - [1, 2]
//	algorithm: astar
//	maze: {kind: recursive-division, gap: 1, retries: 10, seed: 42}
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/search"
)

// ErrInvalidScenario wraps every decoding and validation failure.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

// DefaultAlgorithm is used when a scenario names none.
const DefaultAlgorithm = "bfs"

// Scenario is the YAML document.
type Scenario struct {
	Rows      int         `yaml:"rows"`
	Cols      int         `yaml:"cols"`
	Start     *Point      `yaml:"start,omitempty"`
	End       *Point      `yaml:"end,omitempty"`
	Walls     []Point     `yaml:"walls,omitempty"`
	Algorithm string      `yaml:"algorithm,omitempty"`
	Maze      *MazeConfig `yaml:"maze,omitempty"`
}

// MazeConfig asks for a generated maze. Zero values fall back to the maze
// package defaults; a zero seed means time-seeded.
type MazeConfig struct {
	Kind    string `yaml:"kind,omitempty"`
	Gap     int    `yaml:"gap,omitempty"`
	Retries int    `yaml:"retries,omitempty"`
	Seed    int64  `yaml:"seed,omitempty"`
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses and validates one YAML document. Unknown fields are rejected.
func Decode(r io.Reader) (*Scenario, error) {
	var s Scenario
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Encode writes s as YAML with two-space indentation.
func (s *Scenario) Encode(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(s); err != nil {
		encoder.Close()
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to close YAML stream: %w", err)
	}

	return nil
}

// FromGrid captures g's size, endpoints and walls.
func FromGrid(g *gridgraph.Grid, alg search.Algorithm) *Scenario {
	s := &Scenario{
		Rows:      g.Width(),
		Cols:      g.Height(),
		Algorithm: alg.String(),
	}
	if c, ok := g.Start(); ok {
		s.Start = pointOf(c)
	}
	if c, ok := g.End(); ok {
		s.End = pointOf(c)
	}
	for _, c := range g.Walls() {
		s.Walls = append(s.Walls, *pointOf(c))
	}

	return s
}

// Build creates the grid the scenario describes. Maze settings are not
// applied here; see MazeOptions.
func (s *Scenario) Build() (*gridgraph.Grid, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	g, err := gridgraph.NewGrid(s.Rows, s.Cols)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if s.Start != nil {
		g.SetStart(s.Start.Coord())
	}
	if s.End != nil {
		g.SetEnd(s.End.Coord())
	}
	for _, p := range s.Walls {
		g.PlaceWalls(p.Coord())
	}

	return g, nil
}

// SearchAlgorithm resolves the algorithm name.
func (s *Scenario) SearchAlgorithm() (search.Algorithm, error) {
	name := s.Algorithm
	if name == "" {
		name = DefaultAlgorithm
	}
	a, err := search.ParseAlgorithm(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	return a, nil
}

// MazeOptions converts the maze section to generator options.
// It returns nil, nil when the scenario asks for no maze.
func (s *Scenario) MazeOptions() ([]maze.Option, error) {
	if s.Maze == nil {
		return nil, nil
	}
	var opts []maze.Option
	if s.Maze.Kind != "" {
		k, err := maze.ParseKind(s.Maze.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
		}
		opts = append(opts, maze.WithKind(k))
	}
	if s.Maze.Gap > 0 {
		opts = append(opts, maze.WithGap(s.Maze.Gap))
	}
	if s.Maze.Retries > 0 {
		opts = append(opts, maze.WithMaxRetries(s.Maze.Retries))
	}
	opts = append(opts, maze.WithSeed(s.Maze.Seed))

	return opts, nil
}

// Validate checks dimensions, that every cell lies on the board, that walls
// do not cover the endpoints, and that names resolve.
func (s *Scenario) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("%w: rows and cols must be positive, got %dx%d", ErrInvalidScenario, s.Rows, s.Cols)
	}
	inside := func(field string, p *Point) error {
		if p.Row < 0 || p.Row >= s.Rows || p.Col < 0 || p.Col >= s.Cols {
			return fmt.Errorf("%w: %s %v outside %dx%d", ErrInvalidScenario, field, p.Coord(), s.Rows, s.Cols)
		}
		return nil
	}
	if s.Start != nil {
		if err := inside("start", s.Start); err != nil {
			return err
		}
	}
	if s.End != nil {
		if err := inside("end", s.End); err != nil {
			return err
		}
	}
	if s.Start != nil && s.End != nil && *s.Start == *s.End {
		return fmt.Errorf("%w: start and end are both %v", ErrInvalidScenario, s.Start.Coord())
	}
	for i := range s.Walls {
		p := &s.Walls[i]
		if err := inside(fmt.Sprintf("walls[%d]", i), p); err != nil {
			return err
		}
		if (s.Start != nil && *p == *s.Start) || (s.End != nil && *p == *s.End) {
			return fmt.Errorf("%w: walls[%d] %v covers an endpoint", ErrInvalidScenario, i, p.Coord())
		}
	}
	if _, err := s.SearchAlgorithm(); err != nil {
		return err
	}
	if s.Maze != nil && (s.Maze.Gap < 0 || s.Maze.Retries < 0) {
		return fmt.Errorf("%w: maze gap and retries must not be negative", ErrInvalidScenario)
	}
	if _, err := s.MazeOptions(); err != nil {
		return err
	}

	return nil
}

func (s *Scenario) applyDefaults() {
	if s.Algorithm == "" {
		s.Algorithm = DefaultAlgorithm
	}
}
