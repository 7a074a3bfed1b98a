// Package raster turns a polygonal boundary into a binary mask by
// classifying deterministic pixel-center sample points.
package raster

import (
	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/floats"
)

// Grid holds the pixel-center sample coordinates for a raster. Xs runs
// west to east; Ys runs north to south, so Ys[0] belongs to the top
// row.
type Grid struct {
	Xs []float64
	Ys []float64
}

// BuildGrid computes w pixel-center X samples and h pixel-center Y
// samples across b. Each sample sits half a cell in from the box edge,
// so spacing is exactly extent/count on both axes and no sample lands
// on the boundary by construction.
func BuildGrid(b *geom.Bounds, w, h int) Grid {
	ys := centers(b.Min.Y, b.Max.Y, h)
	// raster convention: row 0 is the top (max Y) row
	floats.Reverse(ys)
	return Grid{
		Xs: centers(b.Min.X, b.Max.X, w),
		Ys: ys,
	}
}

// centers fills n evenly spaced cell centers over [lo, hi). A single
// cell samples the midpoint of the extent, not the edge.
func centers(lo, hi float64, n int) []float64 {
	s := make([]float64, n)
	half := (hi - lo) / (2 * float64(n))
	if n == 1 {
		s[0] = lo + half
		return s
	}
	floats.Span(s, lo+half, hi-half)
	return s
}
