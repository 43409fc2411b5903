// Polygon triangulation by plane sweep.
//
// This package converts a simple polygon, which may be non-convex, into a set
// of triangles containing only the original points. A vertical line sweeps the
// polygon from left to right, adding diagonals that split it into X-monotone
// pieces, and each piece is then triangulated with a linear stack scan.
//
// Polygons may wind either way. Triangles and pieces come back wound the same
// way as the input.
package triangulate

import "github.com/planesweep/triangulate/internal"

type Point = internal.Point
type Vertex = internal.Vertex
type Edge = internal.Edge
type Triangle = internal.Triangle
type Polygon = internal.Polygon
type Decomposition = internal.Decomposition

var (
	// Returned for input that isn't a usable simple polygon
	ErrMalformedInput = internal.ErrMalformedInput
	// Returned when the sweep ends up in an inconsistent state. This usually
	// means the polygon intersects itself.
	ErrInvariantViolation = internal.ErrInvariantViolation
)

// Build a polygon from points, numbering the vertices in order.
func NewPolygon(points ...Point) Polygon {
	return internal.NewPolygon(points...)
}

// Convert a polygon into triangles.
//
// The polygon must be simple. This is checked only cheaply (no repeated
// consecutive points, nonzero area); a self-intersecting polygon will usually
// produce ErrInvariantViolation. Fewer than three points produce no triangles
// and no error.
func Triangulate(points []Point) (result []Triangle, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	polygon := internal.NewPolygon(points...)
	if err := polygon.Validate(false); err != nil {
		return nil, err
	}
	return []Triangle(polygon.Triangulate()), nil
}

// Triangulate several polygons independently and in parallel. The results and
// errors are in input order.
func TriangulateAll(polygons [][]Point) ([][]Triangle, []error) {
	list := make(internal.PolygonList, len(polygons))
	for i, points := range polygons {
		list[i] = internal.NewPolygon(points...)
	}
	results, errs := list.TriangulateEach(false)
	triangles := make([][]Triangle, len(results))
	for i, result := range results {
		triangles[i] = result
	}
	return triangles, errs
}

// Split a polygon into X-monotone pieces. Each piece is a cycle of the
// original vertices; the pieces share the diagonals as edges.
func Decompose(points []Point) ([][]Vertex, error) {
	d, err := DecomposeDetailed(points)
	if err != nil {
		return nil, err
	}
	pieces := make([][]Vertex, len(d.Pieces))
	for i, piece := range d.Pieces {
		pieces[i] = piece.Vertices
	}
	return pieces, nil
}

// Like Decompose, but also reports the diagonals and the classification of
// every vertex.
func DecomposeDetailed(points []Point) (result *Decomposition, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	polygon := internal.NewPolygon(points...)
	if err := polygon.Validate(false); err != nil {
		return nil, err
	}
	return internal.Decompose(polygon), nil
}

// Triangulate a polygon that is already X-monotone, such as one of the pieces
// returned by Decompose. A polygon that isn't monotone produces
// ErrInvariantViolation.
func TriangulateMonotone(vertices []Vertex) (result []Triangle, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return []Triangle(internal.TriangulateMonotone(Polygon{Vertices: vertices})), nil
}
