package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds the first
// polygon, and returns it with the winding it has in the file. If anything goes
// wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

var fixtureNames = []string{
	"comb_up",
	"comb_left",
	"zigzag",
	"zigzag_vertical",
	"spiral",
	"mountain",
}

func LoadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointStrings := strings.Fields(polygonEl.Attributes["points"])
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coordinates := strings.Split(pointString, ",")
		if len(coordinates) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coordinates[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coordinates[0], err)
		}
		y, err := strconv.ParseFloat(coordinates[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coordinates[1], err)
		}
		points = append(points, Point{x, y})
	}
	return NewPolygon(points...)
}

// Some ad hoc code specified fixtures

func Square() Polygon {
	return NewPolygon(Point{0, 0}, Point{1, 0}, Point{1, 1}, Point{0, 1})
}

func SimpleStar() Polygon {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return NewPolygon(points...)
}

// Arrowhead pointing down. Monotone in X, so it needs no diagonals.
func Chevron() Polygon {
	return NewPolygon(Point{0, 0}, Point{2, 2}, Point{4, 0}, Point{2, 4})
}

// Square with a notch cut into its top edge, down to (2, 1)
func NotchedSquare() Polygon {
	return NewPolygon(Point{0, 0}, Point{4, 0}, Point{4, 4}, Point{2, 1}, Point{0, 4})
}

// The chevron turned to point right. The notch is then a merge vertex.
func RightChevron() Polygon {
	return NewPolygon(Point{0, 4}, Point{1, 2}, Point{0, 0}, Point{4, 2})
}

// The chevron turned to point left. The notch is then a split vertex.
func LeftChevron() Polygon {
	return NewPolygon(Point{4, 4}, Point{3, 2}, Point{4, 0}, Point{0, 2})
}

// Star shaped polygon with n vertices at jittered angles and random radii.
// Coordinates are rounded to a 0.1 grid, which produces plenty of shared X
// values.
func RandomStar(seed int64, n int) Polygon {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		angle := 2 * math.Pi * (float64(i) + 0.4*rng.Float64()) / float64(n)
		radius := 20 + 80*rng.Float64()
		points[i] = Point{
			X: math.Round(10*radius*math.Cos(angle)) / 10,
			Y: math.Round(10*radius*math.Sin(angle)) / 10,
		}
	}
	return NewPolygon(points...)
}

// Bar chart outline with n bars of random integer heights. Every edge is axis
// aligned, and many vertices share X values.
func Histogram(seed int64, n int) Polygon {
	rng := rand.New(rand.NewSource(seed))
	heights := make([]float64, n)
	for i := range heights {
		for {
			heights[i] = float64(1 + rng.Intn(6))
			if i == 0 || heights[i] != heights[i-1] {
				break
			}
		}
	}

	points := []Point{{0, 0}, {float64(n), 0}}
	for i := n - 1; i >= 0; i-- {
		points = append(points, Point{float64(i + 1), heights[i]}, Point{float64(i), heights[i]})
	}
	return NewPolygon(points...)
}

// Multiply every coordinate by factor, which must be positive.
func Scale(poly Polygon, factor float64) Polygon {
	points := make([]Point, len(poly.Vertices))
	for i, v := range poly.Vertices {
		points[i] = Point{v.X * factor, v.Y * factor}
	}
	return NewPolygon(points...)
}

// Swap X and Y of every vertex. This turns a shape on its side (and flips its
// winding), which exchanges the roles of vertical and horizontal edges.
func Transpose(poly Polygon) Polygon {
	points := make([]Point, len(poly.Vertices))
	for i, v := range poly.Vertices {
		points[i] = Point{v.Y, v.X}
	}
	return NewPolygon(points...)
}
