package raster

import "github.com/ctessum/geom"

// edge is one ring segment. Horizontal segments never produce ray
// crossings and are dropped at construction.
type edge struct {
	x0, y0, x1, y1 float64
}

// crosses reports whether the horizontal ray at y intersects the edge.
// The half-open comparison counts a vertex for exactly one of the two
// edges meeting there.
func (e edge) crosses(y float64) bool {
	return (e.y0 > y) != (e.y1 > y)
}

// crossingX is the X coordinate where the edge meets the horizontal
// line at y. Only meaningful when crosses(y) is true, which also
// guarantees y0 != y1.
func (e edge) crossingX(y float64) float64 {
	return e.x0 + (y-e.y0)*(e.x1-e.x0)/(e.y1-e.y0)
}

// polygonEdges flattens every ring of every polygon into edges. Ring
// winding is irrelevant: classification is even-odd over all rings,
// which also handles holes.
func polygonEdges(p geom.Polygonal) []edge {
	var es []edge
	for _, poly := range p.Polygons() {
		for _, ring := range poly {
			n := len(ring)
			if n < 3 {
				continue
			}
			for i := 0; i < n; i++ {
				a := ring[i]
				b := ring[(i+1)%n]
				if a.Y == b.Y {
					continue
				}
				es = append(es, edge{a.X, a.Y, b.X, b.Y})
			}
		}
	}
	return es
}
