// Package boundary loads a vector polygon boundary and its coordinate
// reference system from common GIS file formats and dissolves it into
// a single immutable geometry.
package boundary

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ctessum/geom"
)

var (
	// ErrNoGeometry means the input file contained no geometry at all.
	ErrNoGeometry = errors.New("no geometry found in input")
	// ErrNotPolygonal means the input had geometry, but nothing
	// polygonal remained after filtering, so there is nothing to
	// rasterize.
	ErrNotPolygonal = errors.New("no polygonal geometry to rasterize")
)

// Boundary is the single dissolved geometry read from an input file,
// plus the CRS its coordinates are expressed in. It is not modified
// after Load returns.
type Boundary struct {
	Geom geom.Polygonal
	CRS  CRS
}

// Load reads all features from path and returns their polygonal union.
// The format is chosen by file extension.
func Load(path string) (Boundary, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".geojson", ".json":
		return loadGeoJSON(path)
	case ".shp":
		return loadShapefile(path)
	case ".wkt":
		return loadWKT(path)
	default:
		return Boundary{}, fmt.Errorf("geomask: unsupported input format %q", ext)
	}
}

// assemble reduces the raw geometries of one input file to a Boundary.
// No geometry at all and no polygonal geometry are distinct failures:
// the first aborts before any grid work, the second means the file held
// only points or lines.
func assemble(gs []geom.Geom, crs CRS) (Boundary, error) {
	if len(gs) == 0 {
		return Boundary{}, ErrNoGeometry
	}
	var parts []geom.Polygonal
	for _, g := range gs {
		parts = append(parts, polygonalParts(g)...)
	}
	if len(parts) == 0 {
		return Boundary{}, ErrNotPolygonal
	}
	return Boundary{Geom: dissolve(parts), CRS: crs}, nil
}

// dissolve unions all parts into one geometry so that overlapping
// input features do not double-cover any region. A single part is
// returned untouched.
func dissolve(parts []geom.Polygonal) geom.Polygonal {
	if len(parts) == 1 {
		return parts[0]
	}
	u := parts[0].Union(parts[1])
	for _, p := range parts[2:] {
		u = u.Union(p)
	}
	return u
}

// polygonalParts extracts the polygonal sub-parts of g, recursing into
// geometry collections. Points and lines yield nothing.
func polygonalParts(g geom.Geom) []geom.Polygonal {
	switch t := g.(type) {
	case geom.Polygon:
		return []geom.Polygonal{t}
	case geom.MultiPolygon:
		return []geom.Polygonal{t}
	case geom.GeometryCollection:
		var parts []geom.Polygonal
		for _, sub := range t {
			parts = append(parts, polygonalParts(sub)...)
		}
		return parts
	}
	return nil
}
