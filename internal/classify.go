package internal

import "github.com/logrusorgru/aurora"

// What a vertex means to the sweep. Every vertex of a clockwise polygon is
// exactly one of these, judged from its two neighbors.
type VertexKind int

const (
	// Both neighbors ahead, convex. Opens a new region.
	StartVertex VertexKind = iota
	// Both neighbors behind, convex. Closes a region.
	EndVertex
	// Both neighbors ahead, reflex. Splits a region in two.
	SplitVertex
	// Both neighbors behind, reflex. Joins two regions.
	MergeVertex
	// Previous neighbor behind, next ahead. The interior is below.
	UpperChainVertex
	// Next neighbor behind, previous ahead. The interior is above.
	LowerChainVertex
)

var vertexKindNames = [...]string{
	StartVertex:      "start",
	EndVertex:        "end",
	SplitVertex:      "split",
	MergeVertex:      "merge",
	UpperChainVertex: "upper",
	LowerChainVertex: "lower",
}

func (k VertexKind) String() string {
	if k < 0 || int(k) >= len(vertexKindNames) {
		return "unknown"
	}
	return vertexKindNames[k]
}

// Name colored for terminal output. Split and merge vertices are the ones that
// cause diagonals, so they stand out.
func (k VertexKind) ColorString(au aurora.Aurora) string {
	switch k {
	case SplitVertex, MergeVertex:
		return au.Red(k.String()).String()
	case StartVertex, EndVertex:
		return au.Cyan(k.String()).String()
	default:
		return au.Green(k.String()).String()
	}
}

// Classify v, given its predecessor u and successor w in a clockwise polygon.
// In a clockwise polygon a right turn is a convex corner.
func Classify(u, v, w Vertex) VertexKind {
	// A vertical run of collinear vertices. The sweep order already makes the
	// vertex regular; which chain it continues depends on whether the forward
	// neighbor is above it.
	if SameColumn(u.Point, v.Point) && SameColumn(v.Point, w.Point) {
		if w.Y > v.Y {
			return UpperChainVertex
		}
		return LowerChainVertex
	}

	uAhead := u.After(v.Point)
	wAhead := w.After(v.Point)
	// The raw sign, with no tolerance. A sharp spike and a sharp notch both
	// have a tiny cross product, and only the sign tells them apart.
	reflex := Cross(u.Point, v.Point, w.Point) > 0

	switch {
	case uAhead && wAhead && reflex:
		return SplitVertex
	case uAhead && wAhead:
		return StartVertex
	case !uAhead && !wAhead && reflex:
		return MergeVertex
	case !uAhead && !wAhead:
		return EndVertex
	case wAhead:
		return UpperChainVertex
	default:
		return LowerChainVertex
	}
}

// Classify every vertex of a clockwise cycle, keyed by vertex identity.
func ClassifyAll(g *PolygonGraph) map[int]VertexKind {
	kinds := make(map[int]VertexKind, len(g.Vertices()))
	for _, v := range g.Vertices() {
		kinds[v.Index] = Classify(g.Prev(v), v, g.Next(v))
	}
	return kinds
}
