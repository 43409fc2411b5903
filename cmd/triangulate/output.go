package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/planesweep/triangulate"
	"gopkg.in/yaml.v3"
)

// The outcome for one input polygon
type result struct {
	Polygon   int
	Vertices  int
	Triangles []triangulate.Triangle
	Err       error
}

// Serializable form of a result. Triangles are given both as coordinates and
// as indexes into the input polygon.
type resultDocument struct {
	Polygon   int           `json:"polygon" yaml:"polygon"`
	Vertices  int           `json:"vertices" yaml:"vertices"`
	Count     int           `json:"count" yaml:"count"`
	Triangles [][][]float64 `json:"triangles" yaml:"triangles,flow"`
	Indexes   [][]int       `json:"indexes" yaml:"indexes,flow"`
	Error     string        `json:"error,omitempty" yaml:"error,omitempty"`
}

func (r result) document() resultDocument {
	doc := resultDocument{
		Polygon:   r.Polygon,
		Vertices:  r.Vertices,
		Count:     len(r.Triangles),
		Triangles: make([][][]float64, len(r.Triangles)),
		Indexes:   make([][]int, len(r.Triangles)),
	}
	for i, tri := range r.Triangles {
		doc.Triangles[i] = [][]float64{
			{tri.A.X, tri.A.Y},
			{tri.B.X, tri.B.Y},
			{tri.C.X, tri.C.Y},
		}
		doc.Indexes[i] = []int{tri.A.Index, tri.B.Index, tri.C.Index}
	}
	if r.Err != nil {
		doc.Error = r.Err.Error()
	}
	return doc
}

func writeResults(w io.Writer, format string, au aurora.Aurora, results []result) error {
	switch format {
	case "text":
		return writeText(w, au, results)
	case "yaml":
		return writeYAML(w, results)
	case "json":
		return writeJSON(w, results)
	}
	return errors.Errorf("unknown output format %q", format)
}

// Plain listing, one triangle per line:
//
//	No of triangles: 2
//	(0, 0), (0, 2), (2, 2)
//	(0, 0), (2, 2), (2, 0)
//
// Polygons after the first are separated by a blank line.
func writeText(w io.Writer, au aurora.Aurora, results []result) error {
	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if len(results) > 1 {
			fmt.Fprintln(w, au.Bold(fmt.Sprintf("Polygon %d (%d vertices)", r.Polygon, r.Vertices)))
		}
		if r.Err != nil {
			fmt.Fprintf(w, "%s %v\n", au.Red("Error:"), r.Err)
			continue
		}
		fmt.Fprintf(w, "No of triangles: %d\n", len(r.Triangles))
		for _, tri := range r.Triangles {
			if _, err := fmt.Fprintln(w, tri); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeYAML(w io.Writer, results []result) error {
	docs := make([]resultDocument, len(results))
	for i, r := range results {
		docs[i] = r.document()
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(docs); err != nil {
		return errors.Wrap(err, "encoding yaml")
	}
	return encoder.Close()
}

func writeJSON(w io.Writer, results []result) error {
	docs := make([]resultDocument, len(results))
	for i, r := range results {
		docs[i] = r.document()
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(docs), "encoding json")
}
