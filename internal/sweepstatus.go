package internal

import (
	"fmt"
	"sort"
	"strings"
)

// The sweep status holds the polygon edges crossed by the sweep line, ordered
// from top to bottom. Every edge in the status is directed the way the sweep
// moves (its source is swept before its destination), and the polygon interior
// lies directly below it. Each edge carries a helper: the most recently swept
// vertex that can see the edge from inside the polygon.
//
// Entries live in a slice. Edges in the status never cross, so their relative
// order does not change while the line moves, and the position of a vertex
// among them can be found with a binary search on orientation alone. Insertion
// and removal still shift the slice.
type SweepStatus struct {
	entries []statusEntry
}

type statusEntry struct {
	edge   Edge
	helper Vertex
}

func NewSweepStatus() *SweepStatus {
	return &SweepStatus{}
}

func (s *SweepStatus) Len() int {
	return len(s.entries)
}

// Edges in top to bottom order
func (s *SweepStatus) Edges() []Edge {
	edges := make([]Edge, len(s.entries))
	for i, entry := range s.entries {
		edges[i] = entry.edge
	}
	return edges
}

// Is the point strictly above the line through the edge? Only meaningful for
// points the edge spans in sweep order.
func (e Edge) IsBelow(p Point) bool {
	return Cross(e.Src.Point, e.Dst.Point, p) > 0
}

// Insert an edge whose source is the vertex currently being swept.
func (s *SweepStatus) Insert(edge Edge, helper Vertex) {
	i := sort.Search(len(s.entries), func(i int) bool {
		existing := s.entries[i].edge
		if existing.HasEndpoint(edge.Src) {
			// Sharing the source; the destinations decide
			return existing.IsBelow(edge.Dst.Point)
		}
		return existing.IsBelow(edge.Src.Point)
	})
	s.entries = append(s.entries, statusEntry{})
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = statusEntry{edge, helper}
}

// Remove an edge previously inserted. Removing an edge that isn't there means
// the sweep has lost track of the polygon.
func (s *SweepStatus) Remove(edge Edge) {
	i := s.indexOf(edge)
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
}

func (s *SweepStatus) Helper(edge Edge) Vertex {
	return s.entries[s.indexOf(edge)].helper
}

func (s *SweepStatus) SetHelper(edge Edge, helper Vertex) {
	s.entries[s.indexOf(edge)].helper = helper
}

// Find the status edge directly above v. An edge ending at v counts as being
// above it.
func (s *SweepStatus) EdgeAbove(v Vertex) Edge {
	// First entry that lies below v
	i := sort.Search(len(s.entries), func(i int) bool {
		edge := s.entries[i].edge
		return !edge.HasEndpoint(v) && edge.IsBelow(v.Point)
	})
	if i == 0 {
		fatalf("no edge above vertex %v in sweep status %s", v, s)
	}
	return s.entries[i-1].edge
}

func (s *SweepStatus) indexOf(edge Edge) int {
	for i, entry := range s.entries {
		if entry.edge.Is(edge) {
			return i
		}
	}
	fatalf("edge %v is not in sweep status %s", edge, s)
	return -1
}

func (s *SweepStatus) String() string {
	parts := make([]string, len(s.entries))
	for i, entry := range s.entries {
		parts[i] = fmt.Sprintf("%v (helper %v)", entry.edge, entry.helper)
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
