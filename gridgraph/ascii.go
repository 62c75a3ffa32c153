package gridgraph

import "strings"

// ASCII glyphs used by String.
const (
	GlyphOpen    = '.'
	GlyphWall    = '#'
	GlyphStart   = 'S'
	GlyphEnd     = 'E'
	GlyphVisited = 'o'
	GlyphPath    = '*'
)

// String dumps the grid one row per line. Roles take precedence over
// search state, so the endpoints stay visible on a marked path.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.nodes) + g.width)
	for i, n := range g.nodes {
		if i > 0 && i%g.height == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte(glyph(n))
	}

	return sb.String()
}

func glyph(n Node) byte {
	switch n.Role {
	case RoleStart:
		return GlyphStart
	case RoleEnd:
		return GlyphEnd
	case RoleWall:
		return GlyphWall
	}
	switch n.State {
	case OnPath:
		return GlyphPath
	case Visited:
		return GlyphVisited
	}
	return GlyphOpen
}
