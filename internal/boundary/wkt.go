package boundary

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ctessum/geom"
)

// loadWKT reads a single WKT geometry from a file. WKT carries no CRS,
// so WGS84 is assumed.
func loadWKT(path string) (Boundary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Boundary{}, err
	}
	g, err := parseWKT(string(data))
	if err != nil {
		return Boundary{}, fmt.Errorf("geomask: while decoding %s: %w", path, err)
	}
	return assemble([]geom.Geom{g}, WGS84)
}

// parseWKT parses a subset of WKT.
// Supported: POINT(x y), MULTIPOINT(x y, ...), LINESTRING(x y, ...),
// POLYGON((x y, ...), ...), MULTIPOLYGON(((x y, ...)), ...)
func parseWKT(wkt string) (geom.Geom, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	i := strings.Index(s, "(")
	j := strings.LastIndex(s, ")")
	if i < 0 || j <= i {
		return nil, errors.New("wkt: missing coordinate block")
	}
	body := s[i+1 : j]
	switch {
	case strings.HasPrefix(up, "MULTIPOLYGON"):
		var mp geom.MultiPolygon
		for _, block := range splitWKTGroups(body) {
			poly := parseWKTPolygon(block)
			if len(poly) == 0 {
				return nil, errors.New("wkt multipolygon: empty polygon")
			}
			mp = append(mp, poly)
		}
		if len(mp) == 0 {
			return nil, errors.New("wkt multipolygon: no polygons parsed")
		}
		return mp, nil
	case strings.HasPrefix(up, "POLYGON"):
		poly := parseWKTPolygon(body)
		if len(poly) == 0 {
			return nil, errors.New("wkt polygon: no coordinates parsed")
		}
		return poly, nil
	case strings.HasPrefix(up, "MULTIPOINT"):
		return geom.MultiPoint(parseWKTTuples(stripParens(body))), nil
	case strings.HasPrefix(up, "POINT"):
		pts := parseWKTTuples(body)
		if len(pts) == 0 {
			return nil, errors.New("wkt point: no coordinates parsed")
		}
		return pts[0], nil
	case strings.HasPrefix(up, "LINESTRING"):
		return geom.LineString(parseWKTTuples(body)), nil
	}
	return nil, errors.New("unsupported wkt type")
}

// parseWKTPolygon parses "(x y, ...),(x y, ...)" ring blocks, first
// ring outer, following rings holes.
func parseWKTPolygon(rings string) geom.Polygon {
	var poly geom.Polygon
	for _, block := range splitWKTGroups(rings) {
		pts := parseWKTTuples(block)
		if len(pts) >= 3 {
			poly = append(poly, pts)
		}
	}
	return poly
}

// splitWKTGroups splits a comma-separated list of parenthesized groups
// at the top nesting level, stripping each group's outer parentheses:
// "((a)),((b),(c))" becomes "(a)" and "(b),(c)".
func splitWKTGroups(s string) []string {
	var groups []string
	level := 0
	start := -1
	for i, ch := range s {
		switch ch {
		case '(':
			level++
			if level == 1 {
				start = i + 1
			}
		case ')':
			level--
			if level == 0 && start >= 0 {
				groups = append(groups, s[start:i])
				start = -1
			}
		}
	}
	return groups
}

// stripParens removes embedded parentheses so that both MULTIPOINT
// forms, (x y, x y) and ((x y), (x y)), parse the same way.
func stripParens(s string) string {
	return strings.NewReplacer("(", "", ")", "").Replace(s)
}

// parseWKTTuples splits "x y, x y, ..." into points, skipping tuples
// that do not parse.
func parseWKTTuples(block string) []geom.Point {
	var pts []geom.Point
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) < 2 {
			continue
		}
		x, err1 := strconv.ParseFloat(parts[0], 64)
		y, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		pts = append(pts, geom.Point{X: x, Y: y})
	}
	return pts
}
