package internal

import "math"

const Tolerance = 1e-6

// Used by tests to compare areas
const Epsilon = 1e-9

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Column of the sweep that an X value falls in. X values are snapped to
// multiples of Tolerance, so nearly vertical edges count as vertical. Comparing
// differences against Tolerance instead would not be transitive: 0 and 0.6e-6
// would share a column, and so would 0.6e-6 and 1.2e-6, but 0 and 1.2e-6 would
// not.
func sweepColumn(x float64) float64 {
	return math.Round(x / Tolerance)
}

// Are the points on the same vertical line, as far as the sweep is concerned?
func SameColumn(p, q Point) bool {
	return sweepColumn(p.X) == sweepColumn(q.X)
}

// The sweep line moves from left to right. When two vertices share a column,
// the lower one is swept first. This simulates a slightly rotated sweep line,
// so that no two vertices are ever swept "at the same time", and every
// comparison in the sweep can assume a strict order.
func (p Point) Before(other Point) bool {
	if SameColumn(p, other) {
		return p.Y < other.Y
	}
	return p.X < other.X
}

func (p Point) After(other Point) bool {
	return other.Before(p)
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

// Two vertices are the same vertex if they have the same identity. Coordinates
// are not consulted.
func (v Vertex) Is(other Vertex) bool {
	return v.Index == other.Index
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *VertexStack) Push(v Vertex) {
	*s = append(*s, v)
}

// Pop the top vertex. Popping an empty stack is a bug in the caller.
func (s *VertexStack) Pop() Vertex {
	if len(*s) == 0 {
		fatalf("pop from empty vertex stack")
	}
	v := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return v
}

func (s *VertexStack) Peek() Vertex {
	if len(*s) == 0 {
		fatalf("peek at empty vertex stack")
	}
	return (*s)[len(*s)-1]
}

func (s *VertexStack) Empty() bool {
	return len(*s) == 0
}

func (set VertexSet) Add(v Vertex) {
	set[v.Index] = struct{}{}
}

func (set VertexSet) Contains(v Vertex) bool {
	_, ok := set[v.Index]
	return ok
}

func (set VertexSet) Equals(other VertexSet) bool {
	if len(set) != len(other) {
		return false
	}
	for index := range set {
		if _, ok := other[index]; !ok {
			return false
		}
	}
	return true
}
