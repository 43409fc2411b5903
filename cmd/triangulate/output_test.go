package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/planesweep/triangulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func squareResult(t *testing.T) result {
	points := []triangulate.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	triangles, err := triangulate.Triangulate(points)
	require.NoError(t, err)
	return result{Polygon: 0, Vertices: len(points), Triangles: triangles}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeResults(&buf, "text", aurora.NewAurora(false), []result{squareResult(t)}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "No of triangles: 2", lines[0])
	for _, line := range lines[1:] {
		assert.Equal(t, 2, strings.Count(line, "), ("), "triangle line %q", line)
	}
}

func TestWriteText_SeveralWithError(t *testing.T) {
	failed := result{Polygon: 1, Vertices: 3, Err: errors.New("boom")}
	var buf bytes.Buffer
	require.NoError(t, writeResults(&buf, "text", aurora.NewAurora(false), []result{squareResult(t), failed}))

	out := buf.String()
	assert.Contains(t, out, "Polygon 0 (4 vertices)")
	assert.Contains(t, out, "Polygon 1 (3 vertices)")
	assert.Contains(t, out, "Error: boom")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeResults(&buf, "json", aurora.NewAurora(false), []result{squareResult(t)}))

	var docs []resultDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, 2, docs[0].Count)
	assert.Len(t, docs[0].Triangles, 2)
	assert.Empty(t, docs[0].Error)
	for _, indexes := range docs[0].Indexes {
		for _, index := range indexes {
			assert.True(t, index >= 0 && index < 4)
		}
	}
}

func TestWriteYAML(t *testing.T) {
	failed := result{Polygon: 1, Vertices: 2, Err: errors.New("boom")}
	var buf bytes.Buffer
	require.NoError(t, writeResults(&buf, "yaml", aurora.NewAurora(false), []result{squareResult(t), failed}))

	var docs []resultDocument
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &docs))
	require.Len(t, docs, 2)
	assert.Equal(t, 2, docs[0].Count)
	assert.Equal(t, 4, docs[0].Vertices)
	assert.Equal(t, "boom", docs[1].Error)
	assert.Empty(t, docs[1].Triangles)
}

func TestWriteResults_UnknownFormat(t *testing.T) {
	assert.Error(t, writeResults(&bytes.Buffer{}, "xml", aurora.NewAurora(false), nil))
}
