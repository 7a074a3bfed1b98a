package raster

import (
	"sort"

	"github.com/ctessum/geom"
)

// scanlineClassifier classifies a whole row of samples from one sorted
// list of edge crossings, the bulk counterpart of a per-point ray
// cast. It shares edge construction and the crossing predicate with
// preparedClassifier, so the two produce bit-identical masks for the
// same inputs.
type scanlineClassifier struct {
	edges []edge
}

func newScanline(p geom.Polygonal) *scanlineClassifier {
	return &scanlineClassifier{edges: polygonEdges(p)}
}

func (c *scanlineClassifier) classify(g Grid, m Mask) {
	xs := make([]float64, 0, len(c.edges))
	for row, y := range g.Ys {
		xs = xs[:0]
		for _, e := range c.edges {
			if e.crosses(y) {
				xs = append(xs, e.crossingX(y))
			}
		}
		sort.Float64s(xs)
		for col, x := range g.Xs {
			// even-odd: count crossings strictly east of the sample
			east := len(xs) - sort.Search(len(xs), func(i int) bool { return xs[i] > x })
			if east%2 == 1 {
				m.set(row, col, 1)
			}
		}
	}
}
