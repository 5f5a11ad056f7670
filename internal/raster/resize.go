package raster

import (
	"image"

	"github.com/disintegration/imaging"
)

// FitCell scales an image down so that it fits within the given cell
// dimensions while preserving aspect ratio. Images that already fit
// are returned unchanged: the pipeline only ever shrinks, it never
// enlarges a source photograph.
func FitCell(img image.Image, width, height int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= width && bounds.Dy() <= height {
		return img
	}
	return imaging.Fit(img, width, height, imaging.Lanczos)
}
