// Command geomask rasterizes a vector boundary (city or region
// outline) into a fixed-resolution binary mask and writes it as a .npy
// grid, a grayscale image, and a metadata record.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"geomask/internal/boundary"
	"geomask/internal/config"
	"geomask/internal/output"
	"geomask/internal/raster"
	"geomask/internal/tui"
)

func main() {
	job, preview, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	res, err := run(job, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	if preview {
		p := tea.NewProgram(tui.New(res.Mask, res.Meta), tea.WithAltScreen())
		if err := p.Start(); err != nil {
			log.Fatal(err)
		}
	}
}

// parseArgs merges flags with the optional YAML job file; flags given
// explicitly on the command line win.
func parseArgs(args []string) (config.Job, bool, error) {
	def := config.Default()
	fs := flag.NewFlagSet("geomask", flag.ContinueOnError)
	jobPath := fs.String("job", "", "YAML job file; explicit flags override its values")
	input := fs.String("input", "", "path to the boundary geometry (.geojson, .json, .shp or .wkt)")
	outPrefix := fs.String("out-prefix", def.OutPrefix, "output prefix")
	width := fs.Int("width", def.Width, "output raster width in pixels")
	height := fs.Int("height", def.Height, "output raster height in pixels")
	format := fs.String("format", def.Format, "output image format: png, jpg or jpeg")
	projectUTM := fs.Bool("project-utm", false, "reproject to the local UTM zone for uniform meters per pixel")
	invert := fs.Bool("invert", false, "invert mask values (inside=0, outside=1)")
	preview := fs.Bool("preview", false, "show the produced mask in the terminal")
	if err := fs.Parse(args); err != nil {
		return config.Job{}, false, err
	}

	job := def
	if *jobPath != "" {
		var err error
		if job, err = config.LoadJob(*jobPath); err != nil {
			return config.Job{}, false, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			job.Input = *input
		case "out-prefix":
			job.OutPrefix = *outPrefix
		case "width":
			job.Width = *width
		case "height":
			job.Height = *height
		case "format":
			job.Format = *format
		case "project-utm":
			job.ProjectUTM = *projectUTM
		case "invert":
			job.Invert = *invert
		}
	})
	if job.Input == "" {
		job.Input = *input
	}
	if err := job.Validate(); err != nil {
		return config.Job{}, false, err
	}
	return job, *preview, nil
}

type result struct {
	Mask raster.Mask
	Meta output.Meta
}

// run executes the pipeline: load, normalize, build grid, rasterize,
// write. It either produces the complete artifact set or nothing.
// Non-fatal warnings go to warn.
func run(job config.Job, warn io.Writer) (result, error) {
	bnd, err := boundary.Load(job.Input)
	if err != nil {
		return result{}, err
	}

	g, crs := bnd.Geom, bnd.CRS
	if job.ProjectUTM {
		var perr error
		if g, crs, perr = boundary.ProjectUTM(g, crs); perr != nil {
			fmt.Fprintf(warn, "[warn] could not project to UTM automatically: %v\nProceeding in original CRS.\n", perr)
		}
	}

	b := g.Bounds()
	grid := raster.BuildGrid(b, job.Width, job.Height)
	mask := raster.Rasterize(g, grid)
	if job.Invert {
		mask.Invert()
	}

	meta := output.Meta{
		Source: absPath(job.Input),
		Width:  job.Width,
		Height: job.Height,
		Bounds: output.Bounds{MinX: b.Min.X, MinY: b.Min.Y, MaxX: b.Max.X, MaxY: b.Max.Y},
		CRS:    crs.String(),
	}
	meta, err = output.Write(mask, meta, job.OutPrefix, job.Format)
	if err != nil {
		return result{}, err
	}
	return result{Mask: mask, Meta: meta}, nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
