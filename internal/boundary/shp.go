package boundary

import (
	"fmt"
	"os"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
)

// loadShapefile reads every row of an ESRI Shapefile. The CRS comes
// from the .prj sidecar when one exists; otherwise WGS84 is assumed,
// the same leniency applied to GeoJSON.
func loadShapefile(path string) (Boundary, error) {
	dec, err := shp.NewDecoder(path)
	if err != nil {
		return Boundary{}, fmt.Errorf("geomask: while opening %s: %w", path, err)
	}
	defer dec.Close()

	crs := WGS84
	if sr, err := dec.SR(); err == nil && sr != nil {
		crs = CRS{Name: sr.Name, sr: sr}
		prj := strings.TrimSuffix(path, ".shp") + ".prj"
		if wkt, err := os.ReadFile(prj); err == nil {
			crs.WKT = strings.TrimSpace(string(wkt))
		}
	}

	var gs []geom.Geom
	for {
		g, _, more := dec.DecodeRowFields()
		if !more {
			break
		}
		if g != nil {
			gs = append(gs, g)
		}
	}
	if err := dec.Error(); err != nil {
		return Boundary{}, fmt.Errorf("geomask: while reading %s: %w", path, err)
	}
	return assemble(gs, crs)
}
