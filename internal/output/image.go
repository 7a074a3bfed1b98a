package output

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"

	"geomask/internal/raster"
)

// writeImage encodes the mask as an 8-bit grayscale image of identical
// dimensions, mapping 1 to 255 and 0 to 0.
func writeImage(path, format string, m raster.Mask) error {
	img := image.NewGray(image.Rect(0, 0, m.W, m.H))
	for i, v := range m.Data {
		img.Pix[i] = v * 255
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	switch format {
	case "png":
		err = png.Encode(f, img)
	case "jpg", "jpeg":
		// quality 95 keeps the two-level image essentially artifact free
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	default:
		err = fmt.Errorf("geomask: unsupported image format %q", format)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
