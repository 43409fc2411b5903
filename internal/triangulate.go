package internal

import "sync"

// Triangulate a simple polygon of either winding. The polygon is split into
// monotone pieces, and each piece is triangulated on its own. Triangles are
// wound the same way as the polygon. Polygons with fewer than three vertices
// have no triangles.
func (poly Polygon) Triangulate() TriangleList {
	if len(poly.Vertices) < 3 {
		return nil
	}
	cw, reversed := poly.Clockwise()
	d := decomposeClockwise(cw.Vertices)

	result := make(TriangleList, 0, len(poly.Vertices)-2)
	for _, piece := range d.graph.SubPolygons() {
		result = append(result, triangulateMonotoneClockwise(piece)...)
	}
	if reversed {
		return result.Reverse()
	}
	return result
}

// Validate and triangulate every polygon in the list independently. Each
// polygon gets its own goroutine; they share nothing. Results and errors are in
// list order, and a failure in one polygon doesn't affect the others.
func (list PolygonList) TriangulateEach(strict bool) ([]TriangleList, []error) {
	results := make([]TriangleList, len(list))
	errs := make([]error, len(list))

	var wg sync.WaitGroup
	for i := range list {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := list[i].Validate(strict); err != nil {
				errs[i] = err
				return
			}
			errs[i] = Catch(func() {
				results[i] = list[i].Triangulate()
			})
		}(i)
	}
	wg.Wait()
	return results, errs
}
