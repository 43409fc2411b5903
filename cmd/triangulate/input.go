package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/planesweep/triangulate"
)

// Read polygons in either of two formats, which may be mixed:
//
//	4        0 0
//	0 0      2 0
//	2 0      2 2
//	2 2      0 2
//	0 2
//	         5 5
//	         ...
//
// A line holding a single integer announces that many vertex lines. Otherwise
// vertex lines run until a blank line or the end of the input. Coordinates may
// be separated by spaces or commas, and '#' starts a comment.
func readPolygons(r io.Reader) ([][]triangulate.Point, error) {
	var polygons [][]triangulate.Point
	var current []triangulate.Point
	expected := -1
	lineNo := 0

	flush := func() error {
		if expected > 0 {
			return errors.Errorf("line %d: expected %d more vertices", lineNo, expected)
		}
		if len(current) > 0 {
			polygons = append(polygons, current)
		}
		current = nil
		expected = -1
		return nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := splitFields(line)

		if len(fields) == 0 {
			// Blank lines end free-form polygons but may appear inside counted ones
			if expected < 0 {
				if err := flush(); err != nil {
					return nil, err
				}
			}
			continue
		}

		if len(fields) == 1 {
			if expected > 0 {
				return nil, errors.Errorf("line %d: expected a vertex, got %q", lineNo, fields[0])
			}
			if err := flush(); err != nil {
				return nil, err
			}
			count, err := strconv.Atoi(fields[0])
			// A count of zero would announce nothing, and leave the rest of the
			// input with no way to end a polygon
			if err != nil || count <= 0 {
				return nil, errors.Errorf("line %d: bad vertex count %q", lineNo, fields[0])
			}
			expected = count
			current = make([]triangulate.Point, 0, count)
			continue
		}

		point, err := parsePoint(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		current = append(current, point)
		if expected > 0 {
			expected--
			if expected == 0 {
				expected = -1
				if err := flush(); err != nil {
					return nil, err
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return polygons, nil
}

func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
}

func parsePoint(fields []string) (triangulate.Point, error) {
	if len(fields) != 2 {
		return triangulate.Point{}, errors.Errorf("expected 2 coordinates, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return triangulate.Point{}, errors.Wrapf(err, "bad x coordinate")
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return triangulate.Point{}, errors.Wrapf(err, "bad y coordinate")
	}
	return triangulate.Point{X: x, Y: y}, nil
}
