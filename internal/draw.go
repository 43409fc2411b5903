package internal

import (
	"image"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the shape so the outline isn't clipped
const drawPadding = 20

// Everything that can go into a picture of a triangulation. Any part may be
// empty.
type Drawing struct {
	Polygon   Polygon
	Triangles TriangleList
	Diagonals []Edge
}

// Render the drawing, with scale pixels per unit. The origin is at the bottom
// left, as in the input coordinates.
func (dr Drawing) Render(scale float64) image.Image {
	minX, minY, maxX, maxY := dr.bounds()

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Triangles get a fill that cycles through hues, so neighbors are distinguishable
	for i, tri := range dr.Triangles {
		r, g, b := hue(float64(i) * 0.618033988749895)
		c.MoveTo(tri.A.X, tri.A.Y)
		c.LineTo(tri.B.X, tri.B.Y)
		c.LineTo(tri.C.X, tri.C.Y)
		c.ClosePath()
		c.SetRGBA(r, g, b, 0.6)
		c.FillPreserve()
		c.SetRGB(1, 1, 1)
		c.SetLineWidth(1 / scale)
		c.Stroke()
	}

	c.SetLineWidth(2 / scale)
	c.SetDash(6/scale, 4/scale)
	c.SetRGB(1, 1, 0)
	for _, diagonal := range dr.Diagonals {
		c.DrawLine(diagonal.Src.X, diagonal.Src.Y, diagonal.Dst.X, diagonal.Dst.Y)
		c.Stroke()
	}
	c.SetDash()

	if len(dr.Polygon.Vertices) > 0 {
		first := dr.Polygon.Vertices[0]
		c.MoveTo(first.X, first.Y)
		for _, v := range dr.Polygon.Vertices[1:] {
			c.LineTo(v.X, v.Y)
		}
		c.ClosePath()
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(3 / scale)
		c.Stroke()
	}

	return c.Image()
}

// Bounding box of the polygon, or all zeros for an empty drawing
func (dr Drawing) bounds() (minX, minY, maxX, maxY float64) {
	if len(dr.Polygon.Vertices) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, v := range dr.Polygon.Vertices {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return minX, minY, maxX, maxY
}

// Largest scale at which Render fits in a size by size image, padding
// included. A drawing with no extent fits at any scale.
func (dr Drawing) FitScale(size int) float64 {
	minX, minY, maxX, maxY := dr.bounds()
	extent := math.Max(maxX-minX, maxY-minY)
	if extent <= 0 {
		return math.Inf(1)
	}
	room := math.Max(1, float64(size-2*drawPadding))
	return room / extent
}

// Fully saturated color for a hue in turns
func hue(h float64) (r, g, b float64) {
	h = (h - math.Floor(h)) * 6
	x := 1 - math.Abs(math.Mod(h, 2)-1)
	switch int(h) {
	case 0:
		return 1, x, 0
	case 1:
		return x, 1, 0
	case 2:
		return 0, 1, x
	case 3:
		return 0, x, 1
	case 4:
		return x, 0, 1
	default:
		return 1, 0, x
	}
}

// Helper to draw and print a triangulation in the terminal (iTerm only) for
// debugging.
func (dr Drawing) dbgDraw(scale float64) {
	gg.SavePNG("/tmp/triangulation.png", dr.Render(scale))
	imgcat.CatFile("/tmp/triangulation.png", os.Stdout)
}
