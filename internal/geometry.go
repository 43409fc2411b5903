package internal

import "math"

type Orientation int

const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	CounterClockwise Orientation = 1
)

// Twice the signed area of the triangle pqr. Positive when the triangle winds
// counterclockwise.
func Cross(p, q, r Point) float64 {
	return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
}

// Orientation of the turn p -> q -> r. Nearly collinear triples count as
// collinear. The cross product is compared against the lengths of the two legs
// from p, so the test bounds the sine of the turn and doesn't depend on the
// scale of the coordinates.
func Orient(p, q, r Point) Orientation {
	cross := Cross(p, q, r)
	legs := math.Hypot(q.X-p.X, q.Y-p.Y) * math.Hypot(r.X-p.X, r.Y-p.Y)
	switch {
	case math.Abs(cross) <= Tolerance*legs:
		return Collinear
	case cross > 0:
		return CounterClockwise
	default:
		return Clockwise
	}
}

// Anything with a winding
type Shape interface {
	SignedArea() float64
}

func IsCCW(s Shape) bool {
	return s.SignedArea() > 0
}

func IsCW(s Shape) bool {
	return s.SignedArea() < 0
}

func Area(s Shape) float64 {
	return math.Abs(s.SignedArea())
}

// Shoelace formula. Positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	n := len(poly.Vertices)
	for i, v := range poly.Vertices {
		next := poly.Vertices[CircularIndex(i+1, n)]
		sum += v.X*next.Y - next.X*v.Y
	}
	return sum / 2
}

func (tri Triangle) SignedArea() float64 {
	return Cross(tri.A.Point, tri.B.Point, tri.C.Point) / 2
}

func (tri Triangle) Reverse() Triangle {
	return Triangle{tri.A, tri.C, tri.B}
}

func (tri Triangle) Vertices() [3]Vertex {
	return [3]Vertex{tri.A, tri.B, tri.C}
}

// Strict containment. Points on the boundary of the triangle are not contained.
// Works for either winding.
func (tri Triangle) ContainsPoint(p Point) bool {
	ab := Cross(tri.A.Point, tri.B.Point, p)
	bc := Cross(tri.B.Point, tri.C.Point, p)
	ca := Cross(tri.C.Point, tri.A.Point, p)
	return (ab > 0 && bc > 0 && ca > 0) || (ab < 0 && bc < 0 && ca < 0)
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Vertices: make([]Vertex, 0, len(poly.Vertices))}
	for i := len(poly.Vertices) - 1; i >= 0; i-- {
		newPoly.Vertices = append(newPoly.Vertices, poly.Vertices[i])
	}
	return newPoly
}

// Boundary edges of the polygon, in traversal order
func (poly Polygon) Edges() []Edge {
	n := len(poly.Vertices)
	edges := make([]Edge, 0, n)
	for i, v := range poly.Vertices {
		edges = append(edges, Edge{v, poly.Vertices[CircularIndex(i+1, n)]})
	}
	return edges
}

// Return the polygon in clockwise order, and whether it had to be reversed to
// get there. The sweep works on clockwise polygons only.
func (poly Polygon) Clockwise() (Polygon, bool) {
	if IsCCW(poly) {
		return poly.Reverse(), true
	}
	return poly, false
}

// Even-odd point-in-polygon. This is provided primarily for testing.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule. Counts the edges crossed by a ray
// from p toward positive X.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for _, edge := range poly.Edges() {
		a, b := edge.Src, edge.Dst
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if p.X < x {
			crossingCount++
		}
	}
	return crossingCount
}

func (list PolygonList) ContainsPointByEvenOdd(p Point) bool {
	crossingCount := 0
	for _, poly := range list {
		crossingCount += poly.CrossingCount(p)
	}
	return crossingCount%2 == 1
}

func (list TriangleList) ToPolygonList() PolygonList {
	result := make(PolygonList, 0, len(list))
	for _, tri := range list {
		result = append(result, Polygon{Vertices: []Vertex{tri.A, tri.B, tri.C}})
	}
	return result
}

// Flip the winding of every triangle
func (list TriangleList) Reverse() TriangleList {
	result := make(TriangleList, len(list))
	for i, tri := range list {
		result[i] = tri.Reverse()
	}
	return result
}

// Is this edge between a and b, in either direction?
func (e Edge) Connects(a, b Vertex) bool {
	return (e.Src.Is(a) && e.Dst.Is(b)) || (e.Src.Is(b) && e.Dst.Is(a))
}

// Directed identity
func (e Edge) Is(other Edge) bool {
	return e.Src.Is(other.Src) && e.Dst.Is(other.Dst)
}

func (e Edge) HasEndpoint(v Vertex) bool {
	return e.Src.Is(v) || e.Dst.Is(v)
}
