package raster

import (
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// Prepared is a point-location structure for many repeated containment
// queries against one fixed polygon: every edge is indexed in an
// rtree, so a query only visits edges whose extent can intersect the
// test ray.
type Prepared struct {
	tree *rtree.Rtree
	maxX float64
}

// edgeItem wraps one edge as an indexable geometry. The embedded
// LineString is what the tree sees; the edge carries the precomputed
// endpoints for the crossing predicate.
type edgeItem struct {
	geom.LineString
	e edge
}

// Prepare builds the point-location structure for p.
func Prepare(p geom.Polygonal) *Prepared {
	pr := &Prepared{
		tree: rtree.NewTree(25, 50),
		maxX: p.Bounds().Max.X,
	}
	for _, e := range polygonEdges(p) {
		pr.tree.Insert(&edgeItem{
			LineString: geom.LineString{{X: e.x0, Y: e.y0}, {X: e.x1, Y: e.y1}},
			e:          e,
		})
	}
	return pr
}

// ContainsXY reports whether (x, y) lies inside the polygon, using the
// same even-odd ray cast toward +X as the scanline path: a crossing
// counts only when it is strictly east of the sample, so a sample on a
// west edge is inside and one on an east edge is outside.
func (p *Prepared) ContainsXY(x, y float64) bool {
	ray := &geom.Bounds{
		Min: geom.Point{X: x, Y: y},
		Max: geom.Point{X: p.maxX, Y: y},
	}
	east := 0
	for _, it := range p.tree.SearchIntersect(ray) {
		e := it.(*edgeItem).e
		if e.crosses(y) && x < e.crossingX(y) {
			east++
		}
	}
	return east%2 == 1
}

// preparedClassifier is the per-point fallback strategy: rows, then
// columns, one containment query per sample.
type preparedClassifier struct {
	prep *Prepared
}

func (c *preparedClassifier) classify(g Grid, m Mask) {
	for row, y := range g.Ys {
		for col, x := range g.Xs {
			if c.prep.ContainsXY(x, y) {
				m.set(row, col, 1)
			}
		}
	}
}
