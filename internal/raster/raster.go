package raster

import "github.com/ctessum/geom"

// classifier fills m with 1 for every sample point of g inside the
// geometry it was built from.
type classifier interface {
	classify(g Grid, m Mask)
}

// classifierFor picks the strategy once per rasterization. Geometries
// with directly accessible rings take the bulk scanline path; any
// other Polygonal backend falls back to the prepared per-point test.
// The choice is performance only: both produce identical masks.
func classifierFor(p geom.Polygonal) classifier {
	switch p.(type) {
	case geom.Polygon, geom.MultiPolygon:
		return newScanline(p)
	}
	return &preparedClassifier{prep: Prepare(p)}
}

// Rasterize classifies every sample point of g against p and returns
// the binary mask, 1 inside, 0 outside.
func Rasterize(p geom.Polygonal, g Grid) Mask {
	m := NewMask(len(g.Xs), len(g.Ys))
	classifierFor(p).classify(g, m)
	return m
}
