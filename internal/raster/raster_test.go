package raster

import (
	"bytes"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/ctessum/geom"
)

func square(minX, minY, maxX, maxY float64) geom.Polygon {
	return geom.Polygon{{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
	}}
}

func TestRasterizeFullCover(t *testing.T) {
	// a polygon covering its whole bounding box fills every cell
	p := square(0, 0, 4, 4)
	m := Rasterize(p, BuildGrid(p.Bounds(), 4, 4))

	if m.W != 4 || m.H != 4 {
		t.Fatalf("mask is %dx%d, want 4x4", m.W, m.H)
	}
	for i, v := range m.Data {
		if v != 1 {
			t.Fatalf("Data[%d] = %d, want 1", i, v)
		}
	}
}

func TestRasterizeLeftHalf(t *testing.T) {
	// polygon covers only the west half of the sampled bounds
	p := square(0, 0, 2, 1)
	m := Rasterize(p, BuildGrid(bounds(0, 0, 4, 1), 4, 1))

	want := []uint8{1, 1, 0, 0}
	if !bytes.Equal(m.Data, want) {
		t.Fatalf("mask = %v, want %v", m.Data, want)
	}
}

func TestRasterizeNorthernHalf(t *testing.T) {
	// polygon covers only the north half: ones may appear in rows
	// [0, H/2) and never below
	p := square(0, 2, 4, 4)
	m := Rasterize(p, BuildGrid(bounds(0, 0, 4, 4), 4, 4))

	for row := 0; row < m.H; row++ {
		for col := 0; col < m.W; col++ {
			want := uint8(0)
			if row < m.H/2 {
				want = 1
			}
			if got := m.At(row, col); got != want {
				t.Errorf("cell [%d,%d] = %d, want %d", row, col, got, want)
			}
		}
	}
}

func TestRasterizeHole(t *testing.T) {
	p := geom.Polygon{
		square(0, 0, 6, 6)[0],
		square(2, 2, 4, 4)[0], // hole
	}
	m := Rasterize(p, BuildGrid(p.Bounds(), 6, 6))

	if got := m.At(0, 0); got != 1 {
		t.Errorf("corner cell = %d, want 1", got)
	}
	if got := m.At(3, 3); got != 0 {
		t.Errorf("hole cell = %d, want 0", got)
	}
	if got := m.At(0, 3); got != 1 {
		t.Errorf("cell above hole = %d, want 1", got)
	}
}

func TestRasterizeValuesBinary(t *testing.T) {
	p := geom.Polygon{{
		{X: 0, Y: 0}, {X: 7, Y: 1}, {X: 5, Y: 6}, {X: 2, Y: 4},
	}}
	m := Rasterize(p, BuildGrid(p.Bounds(), 13, 9))

	if m.W != 13 || m.H != 9 || len(m.Data) != 13*9 {
		t.Fatalf("mask is %dx%d (%d cells), want 13x9", m.W, m.H, len(m.Data))
	}
	for i, v := range m.Data {
		if v != 0 && v != 1 {
			t.Fatalf("Data[%d] = %d, want 0 or 1", i, v)
		}
	}
}

func TestInvertIdempotent(t *testing.T) {
	p := square(0, 1, 5, 4)
	m := Rasterize(p, BuildGrid(bounds(0, 0, 8, 8), 8, 8))
	orig := m.Clone()

	m.Invert()
	for i := range m.Data {
		if m.Data[i]+orig.Data[i] != 1 {
			t.Fatalf("Data[%d] = %d after invert, original %d", i, m.Data[i], orig.Data[i])
		}
	}
	m.Invert()
	if !bytes.Equal(m.Data, orig.Data) {
		t.Fatal("double invert did not restore the original mask")
	}
}

// TestStrategiesAgree pins the performance-only contract: the bulk
// scanline path and the prepared per-point path must produce
// bit-identical masks for the same inputs.
func TestStrategiesAgree(t *testing.T) {
	cases := []struct {
		name string
		p    geom.Polygonal
	}{
		{"square", square(0, 0, 10, 10)},
		{"triangle", geom.Polygon{{
			{X: 0, Y: 0}, {X: 9, Y: 2}, {X: 3, Y: 8},
		}}},
		{"holed", geom.Polygon{
			square(0, 0, 9, 9)[0],
			square(3, 3, 6, 6)[0],
		}},
		{"multi", geom.MultiPolygon{
			square(0, 0, 3, 3),
			square(5, 5, 9, 8),
		}},
		{"concave", geom.Polygon{{
			{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 8, Y: 8},
			{X: 4, Y: 3}, {X: 0, Y: 8},
		}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := BuildGrid(tc.p.Bounds(), 17, 13)

			bulk := NewMask(17, 13)
			newScanline(tc.p).classify(g, bulk)

			pointwise := NewMask(17, 13)
			(&preparedClassifier{prep: Prepare(tc.p)}).classify(g, pointwise)

			if !bytes.Equal(bulk.Data, pointwise.Data) {
				t.Fatalf("strategies disagree\nbulk:      %v\npointwise: %v",
					bulk.Data, pointwise.Data)
			}
		})
	}
}

func TestStrategiesAgreeRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		// random simple star-shaped polygon around a center point
		n := 3 + rng.Intn(9)
		ring := make([]geom.Point, n)
		for i := range ring {
			ang := (float64(i) + rng.Float64()*0.8) / float64(n) * 2 * math.Pi
			r := 1 + rng.Float64()*7
			ring[i] = geom.Point{X: 5 + r*math.Cos(ang), Y: 5 + r*math.Sin(ang)}
		}
		p := geom.Polygon{ring}

		// grid rows and columns pinned to vertex coordinates, the
		// case a bbox-filtered edge query is most likely to get wrong
		xs := make([]float64, 0, n+4)
		ys := make([]float64, 0, n+4)
		for _, pt := range ring {
			xs = append(xs, pt.X)
			ys = append(ys, pt.Y)
		}
		for i := 0; i < 4; i++ {
			xs = append(xs, rng.Float64()*12-1)
			ys = append(ys, rng.Float64()*12-1)
		}
		sort.Float64s(xs)
		sort.Sort(sort.Reverse(sort.Float64Slice(ys)))
		g := Grid{Xs: xs, Ys: ys}

		bulk := NewMask(len(xs), len(ys))
		newScanline(p).classify(g, bulk)
		pointwise := NewMask(len(xs), len(ys))
		(&preparedClassifier{prep: Prepare(p)}).classify(g, pointwise)

		if !bytes.Equal(bulk.Data, pointwise.Data) {
			t.Fatalf("trial %d: strategies disagree on %v\nbulk:      %v\npointwise: %v",
				trial, ring, bulk.Data, pointwise.Data)
		}
	}
}

// TestBoundarySemantics documents the containment predicate's behavior
// for samples exactly on the boundary: the even-odd ray cast counts
// crossings strictly east of the sample, so west and south edges are
// inside, east and north edges outside.
func TestBoundarySemantics(t *testing.T) {
	p := square(0, 0, 1, 1)
	prep := Prepare(p)

	cases := []struct {
		name string
		x, y float64
		want bool
	}{
		{"west edge", 0, 0.5, true},
		{"east edge", 1, 0.5, false},
		{"south edge", 0.5, 0, true},
		{"north edge", 0.5, 1, false},
		{"interior", 0.5, 0.5, true},
		{"exterior", 1.5, 0.5, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := prep.ContainsXY(tc.x, tc.y); got != tc.want {
				t.Errorf("ContainsXY(%g, %g) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
			// the scanline path must agree even on boundary samples
			m := NewMask(1, 1)
			newScanline(p).classify(Grid{Xs: []float64{tc.x}, Ys: []float64{tc.y}}, m)
			if got := m.Data[0] == 1; got != tc.want {
				t.Errorf("scanline at (%g, %g) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRasterizeDegenerateBounds(t *testing.T) {
	// zero-width polygon: must not panic, mask may be all zero
	p := geom.Polygon{{
		{X: 2, Y: 0}, {X: 2, Y: 3}, {X: 2, Y: 1},
	}}
	m := Rasterize(p, BuildGrid(p.Bounds(), 3, 3))
	for i, v := range m.Data {
		if v != 0 && v != 1 {
			t.Fatalf("Data[%d] = %d, want 0 or 1", i, v)
		}
	}
}
