// Package output serializes a finished mask to its three artifacts:
// the raw numeric grid, a grayscale image, and a metadata record.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"geomask/internal/raster"
)

// Write saves all artifacts for one mask under prefix and reports each
// saved path on stdout. The caller fills Source, Width, Height, Bounds
// and CRS; output paths and the fixed conventions are completed here.
// Nothing is written until the caller hands over a complete mask, so a
// failed pipeline leaves no partial artifact set behind.
func Write(m raster.Mask, meta Meta, prefix, format string) (Meta, error) {
	ext := format
	if ext == "jpeg" {
		ext = "jpg"
	}
	npyPath := prefix + ".npy"
	imgPath := prefix + "." + ext
	metaPath := prefix + ".meta.txt"

	meta.OutputNPY = absPath(npyPath)
	meta.OutputImage = absPath(imgPath)
	meta.ImageFormat = ext
	meta.InsideValue = 1
	meta.OutsideValue = 0
	meta.Orientation = orientation

	if err := writeNPY(npyPath, m); err != nil {
		return Meta{}, fmt.Errorf("geomask: while writing %s: %w", npyPath, err)
	}
	if err := writeImage(imgPath, ext, m); err != nil {
		return Meta{}, fmt.Errorf("geomask: while writing %s: %w", imgPath, err)
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return Meta{}, err
	}
	if err := os.WriteFile(metaPath, append(data, '\n'), 0o644); err != nil {
		return Meta{}, fmt.Errorf("geomask: while writing %s: %w", metaPath, err)
	}

	fmt.Printf("[ok] Saved: %s\n", npyPath)
	fmt.Printf("[ok] Saved: %s\n", imgPath)
	fmt.Printf("[ok] Saved: %s\n", metaPath)
	return meta, nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
