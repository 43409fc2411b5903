package main

import (
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"github.com/planesweep/triangulate"
	"github.com/planesweep/triangulate/internal"
)

// Path for the image of one polygon. With several polygons, each gets its own
// file: out.png becomes out-0.png, out-1.png, ...
func renderPath(base string, polygon, count int) string {
	if count <= 1 {
		return base
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(base, ext), polygon, ext)
}

// Largest image side drawn, whatever the scale
const maxRenderSize = 8192

func renderImage(points []triangulate.Point, triangles []triangulate.Triangle, scale float64, maxSize int) image.Image {
	drawing := internal.Drawing{
		Polygon:   internal.NewPolygon(points...),
		Triangles: triangles,
	}
	// Diagonals are only decoration, so a polygon that can't be decomposed is
	// still drawn
	if d, err := triangulate.DecomposeDetailed(points); err == nil {
		drawing.Diagonals = d.Diagonals
	}

	// Shrink the scale before drawing, so the full size raster is never
	// allocated. Without a size limit, the image is still kept drawable.
	limit := maxSize
	if limit <= 0 || limit > maxRenderSize {
		limit = maxRenderSize
	}
	scale = math.Min(scale, drawing.FitScale(limit))

	var img image.Image = drawing.Render(scale)
	if maxSize > 0 {
		bounds := img.Bounds()
		if bounds.Dx() > maxSize || bounds.Dy() > maxSize {
			img = imaging.Fit(img, maxSize, maxSize, imaging.Lanczos)
		}
	}
	return img
}

func renderFile(path string, points []triangulate.Point, triangles []triangulate.Triangle, cfg *Config) error {
	img := renderImage(points, triangles, cfg.Scale, cfg.MaxSize)
	if err := imaging.Save(img, path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	if cfg.Imgcat {
		imgcat.CatFile(path, os.Stdout)
	}
	return nil
}
