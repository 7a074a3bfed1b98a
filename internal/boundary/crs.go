package boundary

import (
	"fmt"
	"strings"

	"github.com/ctessum/geom/proj"
)

// webMercatorProj4 is the spatial reference definition for web mapping.
const webMercatorProj4 = "+proj=merc +a=6378137 +b=6378137 +lat_ts=0.0 +lon_0=0.0 +x_0=0.0 +y_0=0 +k=1.0 +units=m +nadgrids=@null +no_defs"

// CRS identifies a coordinate reference system. Proj4 carries the
// definition used for reprojection; it may be empty when the system is
// known by name only, in which case reprojection is impossible and the
// normalizer soft-degrades. WKT, when present, is the well-known text
// read from a .prj sidecar and is preferred for metadata output.
type CRS struct {
	Name  string
	Proj4 string
	WKT   string

	sr *proj.SR // parsed reference, when a decoder supplied one
}

// WGS84 is assumed whenever the input carries no CRS of its own; bare
// GeoJSON is conventionally lon/lat degrees.
var WGS84 = CRS{Name: "EPSG:4326", Proj4: "+proj=longlat +datum=WGS84 +no_defs"}

// String returns the most descriptive textual form available, or
// "UNKNOWN" when the input gave us nothing to report.
func (c CRS) String() string {
	switch {
	case c.WKT != "":
		return c.WKT
	case c.Proj4 != "":
		return c.Proj4
	case c.Name != "":
		return c.Name
	}
	return "UNKNOWN"
}

// IsGeographic reports whether coordinates are lon/lat degrees.
func (c CRS) IsGeographic() bool {
	if strings.Contains(c.Proj4, "+proj=longlat") {
		return true
	}
	return c.sr != nil && c.sr.Name == "longlat"
}

// spatialRef parses the CRS into a spatial reference usable for
// transforms.
func (c CRS) spatialRef() (*proj.SR, error) {
	if c.sr != nil {
		return c.sr, nil
	}
	if c.Proj4 == "" {
		return nil, fmt.Errorf("geomask: CRS %q has no usable definition", c.String())
	}
	sr, err := proj.Parse(c.Proj4)
	if err != nil {
		return nil, fmt.Errorf("geomask: while parsing CRS %q: %w", c.Proj4, err)
	}
	return sr, nil
}

// crsFromName resolves the identifiers that actually occur in loose
// vector files. Unrecognized names are kept verbatim so metadata can
// still report them; they just cannot be reprojected.
func crsFromName(name string) CRS {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "EPSG:4326", "OGC:CRS84", "CRS84",
		"URN:OGC:DEF:CRS:OGC:1.3:CRS84", "URN:OGC:DEF:CRS:EPSG::4326":
		return WGS84
	case "EPSG:3857", "URN:OGC:DEF:CRS:EPSG::3857":
		return CRS{Name: "EPSG:3857", Proj4: webMercatorProj4}
	}
	return CRS{Name: strings.TrimSpace(name)}
}
