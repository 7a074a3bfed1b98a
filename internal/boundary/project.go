package boundary

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/proj"
)

// ProjectUTM reprojects p into the UTM zone covering the geometry's
// center, so that one coordinate unit is close to one meter anywhere on
// the output grid. Sampling lon/lat directly on a uniform grid gives
// pixels whose physical width shrinks toward the poles; reprojecting
// first makes each pixel cover an approximately equal ground area.
//
// On any failure the original geometry and CRS are returned together
// with the error: callers are expected to warn and continue, not abort.
func ProjectUTM(p geom.Polygonal, src CRS) (geom.Polygonal, CRS, error) {
	utm, err := estimateUTM(p.Bounds(), src)
	if err != nil {
		return p, src, err
	}
	srcSR, err := src.spatialRef()
	if err != nil {
		return p, src, err
	}
	dstSR, err := proj.Parse(utm.Proj4)
	if err != nil {
		return p, src, err
	}
	t, err := srcSR.NewTransform(dstSR)
	if err != nil {
		return p, src, err
	}
	g, err := p.Transform(t)
	if err != nil {
		return p, src, err
	}
	pp, ok := g.(geom.Polygonal)
	if !ok {
		return p, src, fmt.Errorf("geomask: reprojection produced non-polygonal %T", g)
	}
	return pp, utm, nil
}

// estimateUTM picks the UTM zone containing the center of b. When src
// is already projected, the center is first brought back to degrees.
func estimateUTM(b *geom.Bounds, src CRS) (CRS, error) {
	lon := (b.Min.X + b.Max.X) / 2
	lat := (b.Min.Y + b.Max.Y) / 2
	if !src.IsGeographic() {
		srcSR, err := src.spatialRef()
		if err != nil {
			return CRS{}, err
		}
		llSR, err := proj.Parse(WGS84.Proj4)
		if err != nil {
			return CRS{}, err
		}
		t, err := srcSR.NewTransform(llSR)
		if err != nil {
			return CRS{}, err
		}
		c, err := geom.Point{X: lon, Y: lat}.Transform(t)
		if err != nil {
			return CRS{}, err
		}
		pt := c.(geom.Point)
		lon, lat = pt.X, pt.Y
	}
	// UTM is defined between 84°S and 84°N
	if math.IsNaN(lon) || math.IsNaN(lat) || lon < -180 || lon > 180 || lat < -84 || lat > 84 {
		return CRS{}, fmt.Errorf("geomask: center lon=%g lat=%g outside UTM coverage", lon, lat)
	}
	zone := int((lon+180)/6) + 1
	if zone > 60 {
		zone = 60
	}
	utm := CRS{
		Name:  fmt.Sprintf("EPSG:326%02d", zone),
		Proj4: fmt.Sprintf("+proj=utm +zone=%d +datum=WGS84 +units=m +no_defs", zone),
	}
	if lat < 0 {
		utm.Name = fmt.Sprintf("EPSG:327%02d", zone)
		utm.Proj4 += " +south"
	}
	return utm, nil
}
