package boundary

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ctessum/geom"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func loadGeoJSON(path string) (Boundary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Boundary{}, err
	}
	gs, crs, err := decodeGeoJSON(data)
	if err != nil {
		return Boundary{}, fmt.Errorf("geomask: while decoding %s: %w", path, err)
	}
	return assemble(gs, crs)
}

// decodeGeoJSON accepts the three document shapes found in the wild:
// a FeatureCollection, a single Feature, or a bare geometry. The
// deprecated top-level "crs" member is honored when present; a missing
// one means WGS84.
func decodeGeoJSON(data []byte) ([]geom.Geom, CRS, error) {
	var probe struct {
		Type string `json:"type"`
		CRS  *struct {
			Properties struct {
				Name string `json:"name"`
			} `json:"properties"`
		} `json:"crs"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, CRS{}, err
	}
	crs := WGS84
	if probe.CRS != nil {
		crs = crsFromName(probe.CRS.Properties.Name)
	}

	var gs []geom.Geom
	switch probe.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, CRS{}, err
		}
		for _, f := range fc.Features {
			if f.Geometry == nil {
				continue
			}
			if g := fromOrb(f.Geometry); g != nil {
				gs = append(gs, g)
			}
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, CRS{}, err
		}
		if f.Geometry != nil {
			if g := fromOrb(f.Geometry); g != nil {
				gs = append(gs, g)
			}
		}
	case "":
		return nil, CRS{}, fmt.Errorf("invalid geojson: missing type")
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, CRS{}, err
		}
		if gg := fromOrb(g.Geometry()); gg != nil {
			gs = append(gs, gg)
		}
	}
	return gs, crs, nil
}

// fromOrb converts a decoded orb geometry into the geom types the rest
// of the pipeline operates on.
func fromOrb(g orb.Geometry) geom.Geom {
	switch t := g.(type) {
	case orb.Point:
		return geom.Point{X: t[0], Y: t[1]}
	case orb.MultiPoint:
		mp := make(geom.MultiPoint, len(t))
		for i, p := range t {
			mp[i] = geom.Point{X: p[0], Y: p[1]}
		}
		return mp
	case orb.LineString:
		return geom.LineString(ringPoints(orb.Ring(t)))
	case orb.MultiLineString:
		mls := make(geom.MultiLineString, len(t))
		for i, ls := range t {
			mls[i] = geom.LineString(ringPoints(orb.Ring(ls)))
		}
		return mls
	case orb.Ring:
		return geom.Polygon{ringPoints(t)}
	case orb.Polygon:
		return polygonFromOrb(t)
	case orb.MultiPolygon:
		mp := make(geom.MultiPolygon, len(t))
		for i, p := range t {
			mp[i] = polygonFromOrb(p)
		}
		return mp
	case orb.Collection:
		var gc geom.GeometryCollection
		for _, sub := range t {
			if g := fromOrb(sub); g != nil {
				gc = append(gc, g)
			}
		}
		return gc
	}
	return nil
}

func polygonFromOrb(p orb.Polygon) geom.Polygon {
	poly := make(geom.Polygon, len(p))
	for i, ring := range p {
		poly[i] = ringPoints(ring)
	}
	return poly
}

func ringPoints(r orb.Ring) []geom.Point {
	pts := make([]geom.Point, len(r))
	for i, p := range r {
		pts[i] = geom.Point{X: p[0], Y: p[1]}
	}
	return pts
}
