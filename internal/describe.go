package internal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/planesweep/triangulate/internal/dbg"
)

// Human readable account of a decomposition: every vertex with its
// classification in sweep order, then the diagonals and pieces. With
// readableNames, vertices also get a memorable debug name.
func (d *Decomposition) Describe(au aurora.Aurora, readableNames bool) string {
	name := func(v Vertex) string {
		if readableNames {
			return fmt.Sprintf("%s %s", v, au.Magenta(dbg.Name(v.Index)))
		}
		return v.String()
	}

	var vertices []Vertex
	for _, piece := range d.Pieces {
		for _, v := range piece.Vertices {
			if indexIn(vertices, v) < 0 {
				vertices = append(vertices, v)
			}
		}
	}
	sort.SliceStable(vertices, func(i, j int) bool {
		return vertices[i].Before(vertices[j].Point)
	})

	var b strings.Builder
	fmt.Fprintln(&b, au.Bold("Sweep events:"))
	for _, v := range vertices {
		fmt.Fprintf(&b, "  %s: %s\n", name(v), d.Kinds[v.Index].ColorString(au))
	}
	fmt.Fprintf(&b, "%s %d\n", au.Bold("Diagonals:"), len(d.Diagonals))
	for _, diagonal := range d.Diagonals {
		fmt.Fprintf(&b, "  %s <-> %s\n", name(diagonal.Src), name(diagonal.Dst))
	}
	fmt.Fprintf(&b, "%s %d\n", au.Bold("Monotone pieces:"), len(d.Pieces))
	for i, piece := range d.Pieces {
		parts := make([]string, len(piece.Vertices))
		for j, v := range piece.Vertices {
			parts[j] = fmt.Sprintf("#%d", v.Index)
		}
		fmt.Fprintf(&b, "  %d: %s\n", i, strings.Join(parts, " "))
	}
	return b.String()
}
