package internal

import "fmt"

type Point struct {
	X float64
	Y float64
}

// A Vertex is a point of the input polygon together with its position in the
// input cycle. The index is the vertex's identity: two vertices are the same
// vertex iff their indexes match, regardless of their coordinates. Vertices are
// values and are never modified once the polygon has been built.
type Vertex struct {
	Point
	Index int
}

type Polygon struct {
	Vertices []Vertex
}

type PolygonList []Polygon

// An Edge joins two vertices of the polygon. For membership tests the direction
// is irrelevant (see Connects), but edges stored in the sweep status are always
// directed from Src to Dst in traversal order, and are looked up that way.
type Edge struct {
	Src, Dst Vertex
}

type Triangle struct {
	A, B, C Vertex
}

type TriangleList []Triangle

type VertexStack []Vertex

type VertexSet map[int]struct{}

// Build a polygon from a list of points, numbering the vertices in order.
func NewPolygon(points ...Point) Polygon {
	vertices := make([]Vertex, len(points))
	for i, p := range points {
		vertices[i] = Vertex{Point: p, Index: i}
	}
	return Polygon{Vertices: vertices}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (v Vertex) String() string {
	return fmt.Sprintf("#%d%s", v.Index, v.Point)
}

func (e Edge) String() string {
	return fmt.Sprintf("%s -> %s", e.Src, e.Dst)
}

func (tri Triangle) String() string {
	return fmt.Sprintf("%s, %s, %s", tri.A.Point, tri.B.Point, tri.C.Point)
}
