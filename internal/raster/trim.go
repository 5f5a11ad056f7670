package raster

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// TrimMargins crops uniform blank margins from an image. The top-left
// pixel defines the margin colour; rows and columns whose pixels all
// stay within tolerance of it are stripped from each edge. An image
// that is entirely margin is returned unchanged.
func TrimMargins(img image.Image, tolerance uint8) image.Image {
	bounds := img.Bounds()
	if bounds.Empty() {
		return img
	}

	ref := img.At(bounds.Min.X, bounds.Min.Y)

	top := bounds.Min.Y
	for top < bounds.Max.Y && rowIsMargin(img, top, ref, tolerance) {
		top++
	}
	if top == bounds.Max.Y {
		return img
	}

	bottom := bounds.Max.Y - 1
	for bottom > top && rowIsMargin(img, bottom, ref, tolerance) {
		bottom--
	}

	left := bounds.Min.X
	for left < bounds.Max.X && colIsMargin(img, left, top, bottom, ref, tolerance) {
		left++
	}
	right := bounds.Max.X - 1
	for right > left && colIsMargin(img, right, top, bottom, ref, tolerance) {
		right--
	}

	rect := image.Rect(left, top, right+1, bottom+1)
	if rect == bounds {
		return img
	}
	return imaging.Crop(img, rect)
}

// rowIsMargin reports whether every pixel in row y matches the margin
// colour within tolerance.
func rowIsMargin(img image.Image, y int, ref color.Color, tolerance uint8) bool {
	bounds := img.Bounds()
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		if !withinTolerance(img.At(x, y), ref, tolerance) {
			return false
		}
	}
	return true
}

// colIsMargin reports whether every pixel in column x between rows
// top and bottom matches the margin colour within tolerance.
func colIsMargin(img image.Image, x, top, bottom int, ref color.Color, tolerance uint8) bool {
	for y := top; y <= bottom; y++ {
		if !withinTolerance(img.At(x, y), ref, tolerance) {
			return false
		}
	}
	return true
}

// withinTolerance compares two colours channel-wise. The tolerance is
// given in 8-bit space and scaled up to the 16-bit values RGBA yields.
func withinTolerance(c, ref color.Color, tolerance uint8) bool {
	cr, cg, cb, _ := c.RGBA()
	rr, rg, rb, _ := ref.RGBA()
	t := uint32(tolerance) << 8
	return absDiff(cr, rr) <= t && absDiff(cg, rg) <= t && absDiff(cb, rb) <= t
}

// absDiff returns |a - b| for unsigned operands.
func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
