package internal

import "sort"

// Splitting a simple polygon into pieces that are monotone with respect to the
// X axis. A vertical line sweeps the polygon from left to right, stopping at
// each vertex. Wherever the boundary would stop the current region from being
// monotone (split and merge vertices), a diagonal is added to a vertex that is
// visible from inside the polygon. Cutting the polygon along those diagonals
// gives the monotone pieces.

// The result of decomposing one polygon
type Decomposition struct {
	// Monotone pieces, wound the same way as the input polygon
	Pieces PolygonList
	// Diagonals added by the sweep, in the order they were found
	Diagonals []Edge
	// Classification of every input vertex, by vertex index
	Kinds map[int]VertexKind
}

// State for a single sweep. Nothing here outlives the call to Decompose.
type decomposer struct {
	graph  *PolygonGraph
	status *SweepStatus
	kinds  map[int]VertexKind
}

// Split the polygon into monotone pieces.
func ConvertToMonotones(polygon Polygon) PolygonList {
	return Decompose(polygon).Pieces
}

func Decompose(polygon Polygon) *Decomposition {
	if len(polygon.Vertices) < 3 {
		malformedf("cannot decompose polygon with point count: %d", len(polygon.Vertices))
	}
	cw, reversed := polygon.Clockwise()
	d := decomposeClockwise(cw.Vertices)

	result := &Decomposition{
		Diagonals: d.graph.Diagonals(),
		Kinds:     d.kinds,
	}
	for _, piece := range d.graph.SubPolygons() {
		poly := Polygon{Vertices: piece}
		if reversed {
			poly = poly.Reverse()
		}
		result.Pieces = append(result.Pieces, poly)
	}
	return result
}

// Run the sweep over a clockwise cycle, leaving the diagonals in the graph.
func decomposeClockwise(vertices []Vertex) *decomposer {
	d := &decomposer{
		graph:  NewPolygonGraph(vertices),
		status: NewSweepStatus(),
	}
	d.kinds = ClassifyAll(d.graph)

	events := make([]Vertex, len(vertices))
	copy(events, vertices)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Before(events[j].Point)
	})

	for _, v := range events {
		d.handle(v)
	}
	if d.status.Len() != 0 {
		fatalf("sweep finished with edges still in status: %s", d.status)
	}
	return d
}

func (d *decomposer) handle(v Vertex) {
	u := d.graph.Prev(v)
	w := d.graph.Next(v)

	switch d.kinds[v.Index] {
	case StartVertex:
		d.status.Insert(Edge{v, w}, v)

	case EndVertex:
		incoming := Edge{u, v}
		d.fixup(v, incoming)
		d.status.Remove(incoming)

	case SplitVertex:
		// A split vertex can always see the helper of the edge above it
		above := d.status.EdgeAbove(v)
		d.graph.Connect(v, d.status.Helper(above))
		d.status.SetHelper(above, v)
		d.status.Insert(Edge{v, w}, v)

	case MergeVertex:
		incoming := Edge{u, v}
		d.fixup(v, incoming)
		d.status.Remove(incoming)
		above := d.status.EdgeAbove(v)
		d.fixup(v, above)
		d.status.SetHelper(above, v)

	case UpperChainVertex:
		incoming := Edge{u, v}
		d.fixup(v, incoming)
		d.status.Remove(incoming)
		d.status.Insert(Edge{v, w}, v)

	case LowerChainVertex:
		above := d.status.EdgeAbove(v)
		d.fixup(v, above)
		d.status.SetHelper(above, v)
	}
}

// If the edge's helper is a merge vertex, it is still waiting for a diagonal
// to its right. v is the first vertex it can see, so connect them.
func (d *decomposer) fixup(v Vertex, edge Edge) {
	helper := d.status.Helper(edge)
	if d.kinds[helper.Index] == MergeVertex {
		d.graph.Connect(helper, v)
	}
}
