package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"sort"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. There are exactly n-2 triangles.
// 2. The set of vertices in the triangles equals the set of vertices in the
//    polygon, and every triangle vertex carries its original coordinates.
// 3. Every edge of the polygon is an edge of some triangle.
// 4. Every triangle winds the same way as the polygon.
// 5. No triangle has zero area.
// 6. The sum of the areas of all triangles is equal to the area of the polygon.
func AssertValidTriangulation(t *testing.T, polygon Polygon, triangles TriangleList) {
	t.Helper()
	require.Len(t, triangles, len(polygon.Vertices)-2, "a polygon with n vertices has n-2 triangles")

	byIndex := make(map[int]Vertex, len(polygon.Vertices))
	polyVertices := make(VertexSet)
	for _, v := range polygon.Vertices {
		byIndex[v.Index] = v
		polyVertices.Add(v)
	}
	triangleVertices := make(VertexSet)
	for _, tri := range triangles {
		for _, v := range tri.Vertices() {
			triangleVertices.Add(v)
			require.Equal(t, byIndex[v.Index], v, "triangle vertex does not match the input vertex")
		}
	}
	require.True(t, polyVertices.Equals(triangleVertices),
		"set of vertices in the triangles must equal the set of vertices in the polygon: %v",
		pretty.Diff(sortedIndexes(polyVertices), sortedIndexes(triangleVertices)))

	ccw := IsCCW(polygon)
	var triangleArea float64
	triangleSegmentSet := make(normalizedSegmentSet)
	for _, tri := range triangles {
		require.NotEqual(t, Collinear, Orient(tri.A.Point, tri.B.Point, tri.C.Point), "degenerate triangle: %s", tri)
		require.Equal(t, ccw, IsCCW(tri), "triangle %s winds the wrong way", tri)
		triangleArea += Area(tri)
		triangleSegmentSet.add(tri.A, tri.B)
		triangleSegmentSet.add(tri.B, tri.C)
		triangleSegmentSet.add(tri.C, tri.A)
	}

	for _, edge := range polygon.Edges() {
		require.True(t, triangleSegmentSet.contains(edge.Src, edge.Dst), "polygon edge %v is not an edge of any triangle", edge)
	}

	polygonArea := Area(polygon)
	require.InDelta(t, polygonArea, triangleArea, Epsilon*math.Max(1, polygonArea), "sum of the areas of all triangles must equal the area of the polygon")
}

func sortedIndexes(set VertexSet) []int {
	indexes := make([]int, 0, len(set))
	for index := range set {
		indexes = append(indexes, index)
	}
	sort.Ints(indexes)
	return indexes
}

// Used in the helper above, this is an undirected segment between two vertex
// identities, with the smaller index first.
type normalizedSegment struct {
	a, b int
}

func newNormalizedSegment(a, b Vertex) normalizedSegment {
	if a.Index < b.Index {
		return normalizedSegment{a.Index, b.Index}
	}
	return normalizedSegment{b.Index, a.Index}
}

type normalizedSegmentSet map[normalizedSegment]struct{}

func (set normalizedSegmentSet) add(a, b Vertex) {
	set[newNormalizedSegment(a, b)] = struct{}{}
}

func (set normalizedSegmentSet) contains(a, b Vertex) bool {
	_, ok := set[newNormalizedSegment(a, b)]
	return ok
}

// Check that the triangles tile the polygon, by sampling a grid over its
// bounding box. Points inside the polygon must be inside exactly one triangle,
// and points outside must be in none. Samples too close to any edge to judge
// reliably are skipped.
func validateTrianglesBySampling(t *testing.T, triangles TriangleList, polygon Polygon) {
	t.Helper()
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, v := range polygon.Vertices {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	// An odd step and offset keep samples off the grid the fixtures are drawn on
	step := math.Max(maxX-minX, maxY-minY) / 53.7
	margin := 1e-6 * math.Max(1, maxX-minX)
	edges := polygon.Edges()
	for _, tri := range triangles {
		edges = append(edges, Edge{tri.A, tri.B}, Edge{tri.B, tri.C}, Edge{tri.C, tri.A})
	}

	for y := minY + 0.3712*step; y <= maxY; y += step {
		for x := minX + 0.2871*step; x <= maxX; x += step {
			p := Point{X: x, Y: y}
			if nearAnyEdge(p, edges, margin) {
				continue
			}

			count := 0
			for _, tri := range triangles {
				if tri.ContainsPoint(p) {
					count++
				}
			}
			if polygon.ContainsPointByEvenOdd(p) {
				assert.Equal(t, 1, count, "point %v should be covered by exactly one triangle", p)
			} else {
				assert.Equal(t, 0, count, "point %v is outside the polygon but covered by a triangle", p)
			}
		}
	}
}

func nearAnyEdge(p Point, edges []Edge, margin float64) bool {
	for _, edge := range edges {
		if distanceToSegment(p, edge.Src.Point, edge.Dst.Point) < margin {
			return true
		}
	}
	return false
}

func distanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	lengthSquared := ab.X*ab.X + ab.Y*ab.Y
	var t float64
	if lengthSquared > 0 {
		t = math.Max(0, math.Min(1, (ap.X*ab.X+ap.Y*ab.Y)/lengthSquared))
	}
	closest := Point{a.X + t*ab.X, a.Y + t*ab.Y}
	return math.Hypot(p.X-closest.X, p.Y-closest.Y)
}

// Every piece of a decomposition must be monotone, use only input vertices,
// and together the pieces must cover the polygon's area exactly.
func AssertValidDecomposition(t *testing.T, polygon Polygon, d *Decomposition) {
	t.Helper()
	require.Len(t, d.Pieces, len(d.Diagonals)+1, "every diagonal adds one piece")

	byIndex := make(map[int]Vertex, len(polygon.Vertices))
	for _, v := range polygon.Vertices {
		byIndex[v.Index] = v
	}
	var area float64
	ccw := IsCCW(polygon)
	for _, piece := range d.Pieces {
		require.True(t, IsMonotone(piece), "piece is not monotone: %# v", pretty.Formatter(piece))
		require.Equal(t, ccw, IsCCW(piece), "piece winds the wrong way")
		for _, v := range piece.Vertices {
			require.Equal(t, byIndex[v.Index], v)
		}
		area += Area(piece)
	}
	polygonArea := Area(polygon)
	require.InDelta(t, polygonArea, area, Epsilon*math.Max(1, polygonArea))
}
