package scenario

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Point is a cell written as a two-element flow sequence, [row, col].
type Point struct {
	Row, Col int
}

func pointOf(c gridgraph.Coord) *Point { return &Point{Row: c.Row, Col: c.Col} }

// Coord converts p to a grid coordinate.
func (p Point) Coord() gridgraph.Coord { return gridgraph.At(p.Row, p.Col) }

// MarshalYAML emits [row, col].
func (p Point) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(p.Row)},
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(p.Col)},
		},
	}, nil
}

// UnmarshalYAML accepts exactly two integers.
func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	var pair []int
	if err := value.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("line %d: point needs [row, col], got %d values", value.Line, len(pair))
	}
	p.Row, p.Col = pair[0], pair[1]
	return nil
}
