package internal

import (
	"math"

	"github.com/pkg/errors"
)

// Best-effort check that the polygon is something the sweep can handle. The
// cheap checks are linear: finite coordinates, no repeated consecutive
// vertices, and nonzero area. Strict mode adds a quadratic search for
// intersecting edges.
//
// Polygons with fewer than three vertices pass; they simply have no triangles.
func (poly Polygon) Validate(strict bool) error {
	n := len(poly.Vertices)
	if n < 3 {
		return nil
	}

	seen := make(VertexSet, n)
	for i, v := range poly.Vertices {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
			return errors.Wrapf(ErrMalformedInput, "vertex %v has a non-finite coordinate", v)
		}
		if seen.Contains(v) {
			return errors.Wrapf(ErrMalformedInput, "vertex index %d is used more than once", v.Index)
		}
		seen.Add(v)
		next := poly.Vertices[CircularIndex(i+1, n)]
		if Equal(v.X, next.X) && Equal(v.Y, next.Y) {
			return errors.Wrapf(ErrMalformedInput, "consecutive vertices %v and %v are identical", v, next)
		}
	}

	// Zero area means thinner than the tolerance on average, whatever the scale
	if Area(poly) <= Tolerance*poly.extent() {
		return errors.Wrap(ErrMalformedInput, "polygon has zero area")
	}

	if strict {
		if a, b, ok := poly.findIntersection(); ok {
			return errors.Wrapf(ErrMalformedInput, "edges %v and %v intersect", a, b)
		}
	}
	return nil
}

// Larger side of the bounding box
func (poly Polygon) extent() float64 {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range poly.Vertices {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return math.Max(maxX-minX, maxY-minY)
}

// Find a pair of edges that touch anywhere other than the shared endpoint of
// neighboring edges.
func (poly Polygon) findIntersection() (Edge, Edge, bool) {
	edges := poly.Edges()
	n := len(edges)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := edges[i], edges[j]
			neighbors := j == i+1 || (i == 0 && j == n-1)
			if neighbors {
				if foldsBack(a, b) {
					return a, b, true
				}
				continue
			}
			if SegmentsIntersect(a.Src.Point, a.Dst.Point, b.Src.Point, b.Dst.Point) {
				return a, b, true
			}
		}
	}
	return Edge{}, Edge{}, false
}

// Neighboring edges overlap when they are collinear and turn all the way back
// on each other.
func foldsBack(a, b Edge) bool {
	var shared, p, q Point
	switch {
	case a.Dst.Is(b.Src):
		shared, p, q = a.Dst.Point, a.Src.Point, b.Dst.Point
	case b.Dst.Is(a.Src):
		shared, p, q = b.Dst.Point, b.Src.Point, a.Dst.Point
	default:
		return false
	}
	if Orient(p, shared, q) != Collinear {
		return false
	}
	d1 := p.Sub(shared)
	d2 := q.Sub(shared)
	return d1.X*d2.X+d1.Y*d2.Y > 0
}

// Do the closed segments ab and cd share any point?
func SegmentsIntersect(a, b, c, d Point) bool {
	o1 := Orient(a, b, c)
	o2 := Orient(a, b, d)
	o3 := Orient(c, d, a)
	o4 := Orient(c, d, b)

	if o1 != o2 && o3 != o4 {
		return true
	}
	return (o1 == Collinear && onSegment(a, b, c)) ||
		(o2 == Collinear && onSegment(a, b, d)) ||
		(o3 == Collinear && onSegment(c, d, a)) ||
		(o4 == Collinear && onSegment(c, d, b))
}

// For p collinear with ab, is p within the bounding box of ab?
func onSegment(a, b, p Point) bool {
	return p.X <= math.Max(a.X, b.X)+Tolerance && p.X >= math.Min(a.X, b.X)-Tolerance &&
		p.Y <= math.Max(a.Y, b.Y)+Tolerance && p.Y >= math.Min(a.Y, b.Y)-Tolerance
}
