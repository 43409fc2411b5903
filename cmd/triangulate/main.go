// Command triangulate reads polygons and prints their triangulations.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/planesweep/triangulate"
	"github.com/planesweep/triangulate/internal"
	"github.com/planesweep/triangulate/internal/dbg"
	"golang.org/x/term"
)

// Version is set at build time
var Version = "dev"

func main() {
	log.SetFlags(0)

	color := term.IsTerminal(int(os.Stdout.Fd()))
	cfg, err := parseArgs(os.Args[1:], defaultConfig(color))
	if err != nil {
		log.Fatalf("triangulate: %v", err)
	}
	au := aurora.NewAurora(cfg.Color)

	if err := run(cfg, au, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("%s %v", au.Red("triangulate:"), err)
	}
}

// Read, triangulate and print. Polygons that fail are reported in the output
// and make the whole run fail once everything has been printed.
func run(cfg *Config, au aurora.Aurora, stdin io.Reader, stdout io.Writer) error {
	start := time.Now()

	input := stdin
	if cfg.Input != "-" {
		if cfg.Input == "" {
			return errors.New("no input file")
		}
		f, err := os.Open(cfg.Input)
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		defer f.Close()
		input = f
	} else if file, ok := stdin.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		log.Println("Reading polygons from the terminal, end with Ctrl-D")
	}

	polygons, err := readPolygons(input)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		log.Printf("Read %d polygons in %s", len(polygons), time.Since(start))
	}
	if len(polygons) == 0 {
		return errors.New("no polygons in input")
	}

	if cfg.Strict {
		for i, points := range polygons {
			if err := internal.NewPolygon(points...).Validate(true); err != nil {
				return errors.Wrapf(err, "polygon %d", i)
			}
		}
	}

	triangulateStart := time.Now()
	triangleLists, errs := triangulate.TriangulateAll(polygons)
	if cfg.Verbose {
		log.Printf("Triangulated in %s", time.Since(triangulateStart))
	}

	results := make([]result, len(polygons))
	failed := 0
	for i, points := range polygons {
		results[i] = result{
			Polygon:   i,
			Vertices:  len(points),
			Triangles: triangleLists[i],
			Err:       errs[i],
		}
		if errs[i] != nil {
			failed++
		}
		if cfg.Debug {
			describe(au, i, points)
		}
		if cfg.Render != "" && errs[i] == nil {
			path := renderPath(cfg.Render, i, len(polygons))
			if err := renderFile(path, points, triangleLists[i], cfg); err != nil {
				return err
			}
			if cfg.Verbose {
				log.Printf("Rendered %s", path)
			}
		}
	}

	if err := writeResults(stdout, cfg.Format, au, results); err != nil {
		return err
	}
	if cfg.Verbose {
		log.Printf("Execution time: %s", au.Green(fmt.Sprintf("%.3fs", time.Since(start).Seconds())))
	}
	if failed > 0 {
		return errors.Errorf("%d of %d polygons failed", failed, len(polygons))
	}
	return nil
}

// Log the decomposition of a polygon
func describe(au aurora.Aurora, i int, points []triangulate.Point) {
	d, err := triangulate.DecomposeDetailed(points)
	if err != nil {
		log.Printf("Polygon %d: %v", i, err)
		return
	}
	log.Printf("%s\n%s", au.Bold(fmt.Sprintf("Polygon %d", i)), d.Describe(au, true))
	if len(points) <= 16 {
		log.Print(dbg.Dump(d.Pieces))
	}
}
