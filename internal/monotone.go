package internal

// Facilities for converting an X-monotone polygon into triangles. An X
// monotone polygon is a simple polygon such that any vertical line intersects
// at most two edges.
//
// The sweep order from Point.Before() is used here as well, so that vertical
// segments behave as though the polygon were very slightly rotated. A
// vertical edge whose upper end comes later in the cycle sits on the upper
// chain, and one whose lower end comes later sits on the lower chain. Since
// this matches the decomposition sweep, every piece it produces is monotone
// under this convention.

type chainSide int

const (
	noChain chainSide = iota
	upperChain
	lowerChain
)

func (side chainSide) opposite() chainSide {
	switch side {
	case upperChain:
		return lowerChain
	case lowerChain:
		return upperChain
	}
	return noChain
}

// Triangulate a monotone polygon of either winding. Triangles come out with
// the same winding as the polygon.
func TriangulateMonotone(polygon Polygon) TriangleList {
	if len(polygon.Vertices) < 3 {
		malformedf("cannot triangulate degenerate polygon with point count: %d", len(polygon.Vertices))
	}
	cw, reversed := polygon.Clockwise()
	triangles := triangulateMonotoneClockwise(cw.Vertices)
	if reversed {
		return triangles.Reverse()
	}
	return triangles
}

// Is the clockwise cycle monotone in sweep order?
func IsMonotone(polygon Polygon) bool {
	if len(polygon.Vertices) < 3 {
		return false
	}
	cw, _ := polygon.Clockwise()
	return Catch(func() {
		sortMonotone(cw.Vertices)
	}) == nil
}

// Merge the two chains of a clockwise monotone cycle into sweep order, noting
// which chain each vertex is on. The leftmost and rightmost vertices are on
// neither. The upper chain runs forward from the leftmost vertex to the
// rightmost, and the lower chain runs backward.
func sortMonotone(vertices []Vertex) ([]Vertex, map[int]chainSide) {
	n := len(vertices)
	var first, last int
	for i, v := range vertices {
		if v.Before(vertices[first].Point) {
			first = i
		}
		if v.After(vertices[last].Point) {
			last = i
		}
	}

	sorted := make([]Vertex, 0, n)
	sorted = append(sorted, vertices[first])
	sides := make(map[int]chainSide, n)

	upperOffset := 1
	lowerOffset := 1
	for {
		upper := vertices[CircularIndex(first+upperOffset, n)]
		lower := vertices[CircularIndex(first-lowerOffset, n)]

		// If we've met up, we're done.
		if upper.Is(lower) {
			if !upper.Is(vertices[last]) {
				fatalf("chains of monotone polygon meet at %v instead of %v", upper, vertices[last])
			}
			sorted = append(sorted, upper)
			break
		}

		var next Vertex
		if upper.Before(lower.Point) {
			next = upper
			sides[upper.Index] = upperChain
			upperOffset++
		} else {
			next = lower
			sides[lower.Index] = lowerChain
			lowerOffset++
		}
		if next.Before(sorted[len(sorted)-1].Point) {
			fatalf("polygon is not monotone: cannot place %v on either chain", next)
		}
		sorted = append(sorted, next)
	}
	return sorted, sides
}

func triangulateMonotoneClockwise(vertices []Vertex) TriangleList {
	if len(vertices) == 3 {
		return TriangleList{{vertices[0], vertices[1], vertices[2]}}
	}

	sorted, sides := sortMonotone(vertices)
	triangles := make(TriangleList, 0, len(vertices)-2)

	// Create the stack and populate it with the first two vertices
	stack := make(VertexStack, 0, len(vertices))
	stack.Push(sorted[0])
	stack.Push(sorted[1])

	for _, p := range sorted[2 : len(sorted)-1] {
		side := sides[p.Index]
		if side != sides[stack.Peek().Index] { // Switched to opposite chain
			// Monotonicity guarantees that every stack vertex is visible from p, so
			// we can fan out to all of them and empty the stack.
			top := stack.Peek()
			triangles = appendFan(triangles, stack, p, side)
			stack = stack[:0]
			stack.Push(top)
			stack.Push(p)
		} else { // Same chain
			// Always pop the last vertex off. If we don't create any triangles this
			// time, we'll put it back
			v := stack.Pop()
			for !stack.Empty() {
				q := stack.Peek()
				// p sees q exactly when the triangle it would make winds the right way
				tri := chainTriangle(q, v, p, side)
				if Orient(tri.A.Point, tri.B.Point, tri.C.Point) != Clockwise {
					break
				}
				triangles = appendTriangle(triangles, tri)
				v = stack.Pop()
			}
			stack.Push(v)
			stack.Push(p)
		}
	}

	// The rightmost vertex closes the fan over whatever is left on the stack.
	// We always have at least two vertices there.
	last := sorted[len(sorted)-1]
	triangles = appendFan(triangles, stack, last, sides[stack.Peek().Index].opposite())

	if len(triangles) != len(vertices)-2 {
		fatalf("monotone polygon with %d vertices produced %d triangles", len(vertices), len(triangles))
	}
	return triangles
}

// Triangle made by p with the chain vertices q and v, where q comes before v,
// and all three are on the same chain.
func chainTriangle(q, v, p Vertex, side chainSide) Triangle {
	if side == upperChain {
		/*
			  v
			 / \
			q   p
		*/
		return Triangle{q, v, p}
	}
	/*
		q   p
		 \ /
		  v
	*/
	return Triangle{p, v, q}
}

// Emit a triangle from p to every consecutive pair on the stack. The stack
// holds a chain on the opposite side from p.
func appendFan(triangles TriangleList, stack VertexStack, p Vertex, side chainSide) TriangleList {
	for i := 0; i+1 < len(stack); i++ {
		a, b := stack[i], stack[i+1]
		if side == lowerChain {
			/*
				a---b
				 \ /
				  p
			*/
			triangles = appendTriangle(triangles, Triangle{a, b, p})
		} else {
			/*
				  p
				 / \
				a---b
			*/
			triangles = appendTriangle(triangles, Triangle{b, a, p})
		}
	}
	return triangles
}

// This is pulled out so that it's easy to add instrumentation.
func appendTriangle(triangles TriangleList, tri Triangle) TriangleList {
	if Orient(tri.A.Point, tri.B.Point, tri.C.Point) == CounterClockwise {
		fatalf("triangle is inverted: %v", tri)
	}
	return append(triangles, tri)
}
