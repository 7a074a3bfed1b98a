package output

// Meta is the sidecar record describing one produced mask. It always
// documents the pre-invert convention (inside=1, outside=0) and the
// fixed raster orientation, regardless of whether the caller inverted
// the grid before writing.
type Meta struct {
	Source       string `json:"source"`
	OutputNPY    string `json:"output_npy"`
	OutputImage  string `json:"output_image"`
	ImageFormat  string `json:"image_format"`
	Height       int    `json:"height"`
	Width        int    `json:"width"`
	Bounds       Bounds `json:"bounds"`
	CRS          string `json:"crs"`
	InsideValue  int    `json:"inside_value"`
	OutsideValue int    `json:"outside_value"`
	Orientation  string `json:"orientation"`
}

// Bounds is the axis-aligned extent the grid was sampled over.
type Bounds struct {
	MinX float64 `json:"minx"`
	MinY float64 `json:"miny"`
	MaxX float64 `json:"maxx"`
	MaxY float64 `json:"maxy"`
}

const orientation = "row 0 is North (top), col 0 is West (left)"
