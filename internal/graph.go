package internal

// The polygon graph holds the original cycle of a clockwise polygon, plus the
// diagonals added while sweeping it. Once the sweep is done, it cuts the cycle
// along the diagonals to produce the monotone pieces.
type PolygonGraph struct {
	cycle []Vertex
	// Position of each vertex in the cycle, by identity
	position  map[int]int
	adjacency map[int]VertexSet
	diagonals []Edge
}

func NewPolygonGraph(vertices []Vertex) *PolygonGraph {
	n := len(vertices)
	g := &PolygonGraph{
		cycle:     vertices,
		position:  make(map[int]int, n),
		adjacency: make(map[int]VertexSet, n),
	}
	for i, v := range vertices {
		if _, ok := g.position[v.Index]; ok {
			malformedf("vertex %v appears twice in the polygon", v)
		}
		g.position[v.Index] = i
		g.adjacency[v.Index] = make(VertexSet)
	}
	for i, v := range vertices {
		next := vertices[CircularIndex(i+1, n)]
		g.adjacency[v.Index].Add(next)
		g.adjacency[next.Index].Add(v)
	}
	return g
}

func (g *PolygonGraph) positionOf(v Vertex) int {
	i, ok := g.position[v.Index]
	if !ok {
		fatalf("vertex %v is not in the polygon", v)
	}
	return i
}

// Original cyclic predecessor. Diagonals never change this.
func (g *PolygonGraph) Prev(v Vertex) Vertex {
	return g.cycle[CircularIndex(g.positionOf(v)-1, len(g.cycle))]
}

// Original cyclic successor. Diagonals never change this.
func (g *PolygonGraph) Next(v Vertex) Vertex {
	return g.cycle[CircularIndex(g.positionOf(v)+1, len(g.cycle))]
}

// Add an undirected connection between u and v. If they aren't already
// connected, the connection is recorded as a diagonal. Connecting an adjacent
// pair is a no-op.
func (g *PolygonGraph) Connect(u, v Vertex) {
	g.positionOf(u)
	g.positionOf(v)
	if u.Is(v) {
		fatalf("cannot connect vertex %v to itself", v)
	}
	if g.adjacency[u.Index].Contains(v) {
		return
	}
	g.adjacency[u.Index].Add(v)
	g.adjacency[v.Index].Add(u)
	g.diagonals = append(g.diagonals, Edge{u, v})
}

// Diagonals in the order they were added
func (g *PolygonGraph) Diagonals() []Edge {
	return g.diagonals
}

func (g *PolygonGraph) Vertices() []Vertex {
	return g.cycle
}

// Cut the original cycle along every diagonal. Each diagonal is found in the
// one piece that contains it, and that piece is split in two, both keeping the
// diagonal's endpoints. Pieces keep the clockwise winding of the original.
func (g *PolygonGraph) SubPolygons() [][]Vertex {
	pieces := [][]Vertex{append([]Vertex(nil), g.cycle...)}
	for _, diagonal := range g.diagonals {
		i := g.pieceForDiagonal(pieces, diagonal)
		left, right := splitPiece(pieces[i], diagonal)
		pieces[i] = left
		pieces = append(pieces, right)
	}
	return pieces
}

// Find the piece a diagonal cuts through. Usually only one piece has both
// endpoints, but pieces can touch at two vertices without sharing the edge
// between them. In that case, the piece whose interior angle at the diagonal's
// source contains the diagonal is the right one.
func (g *PolygonGraph) pieceForDiagonal(pieces [][]Vertex, diagonal Edge) int {
	var candidates []int
	for i, piece := range pieces {
		if indexIn(piece, diagonal.Src) >= 0 && indexIn(piece, diagonal.Dst) >= 0 {
			candidates = append(candidates, i)
		}
	}

	switch len(candidates) {
	case 0:
		fatalf("diagonal %v does not lie within any single piece", diagonal)
	case 1:
		return candidates[0]
	}

	match := -1
	for _, i := range candidates {
		if diagonalInsidePiece(pieces[i], diagonal) {
			if match >= 0 {
				fatalf("diagonal %v lies inside more than one piece", diagonal)
			}
			match = i
		}
	}
	if match < 0 {
		fatalf("diagonal %v lies inside none of the pieces sharing its endpoints", diagonal)
	}
	return match
}

// Does the diagonal leave its source toward the inside of the clockwise piece?
// The interior at a vertex of a clockwise cycle is swept clockwise from the
// direction of the next vertex to the direction of the previous one.
func diagonalInsidePiece(piece []Vertex, diagonal Edge) bool {
	i := indexIn(piece, diagonal.Src)
	n := len(piece)
	u := piece[i].Point
	a := piece[CircularIndex(i+1, n)].Sub(u)
	b := piece[CircularIndex(i-1, n)].Sub(u)
	d := diagonal.Dst.Sub(u)
	cross := func(p, q Point) float64 {
		return p.X*q.Y - p.Y*q.X
	}
	if cross(a, b) < 0 {
		// Convex corner
		return cross(a, d) < 0 && cross(d, b) < 0
	}
	// Reflex or straight corner: inside unless within the outside wedge
	return !(cross(b, d) <= 0 && cross(d, a) <= 0)
}

// Split a cycle along a diagonal between two of its vertices. Both halves
// include both endpoints.
func splitPiece(piece []Vertex, diagonal Edge) (left, right []Vertex) {
	n := len(piece)
	start := indexIn(piece, diagonal.Src)
	end := indexIn(piece, diagonal.Dst)
	for i := start; ; i = CircularIndex(i+1, n) {
		left = append(left, piece[i])
		if i == end {
			break
		}
	}
	for i := end; ; i = CircularIndex(i+1, n) {
		right = append(right, piece[i])
		if i == start {
			break
		}
	}
	if len(left) < 3 || len(right) < 3 {
		fatalf("diagonal %v joins neighboring vertices of piece %v", diagonal, piece)
	}
	return left, right
}

func indexIn(vertices []Vertex, v Vertex) int {
	for i, candidate := range vertices {
		if candidate.Is(v) {
			return i
		}
	}
	return -1
}
