package raster

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Converter turns a source photograph into a decodable, flattened
// raster. Implementations report per-item failures; the pipeline
// decides whether to skip or abort.
type Converter interface {
	// Convert reads the image at path and returns it flattened onto
	// an opaque background.
	Convert(ctx context.Context, path string) (image.Image, error)
}

// NewConverter builds a Converter by name: "magick" shells out to
// ImageMagick, "native" decodes in-process.
func NewConverter(kind string) (Converter, error) {
	switch kind {
	case "magick":
		return &MagickConverter{}, nil
	case "native":
		return &NativeConverter{}, nil
	default:
		return nil, fmt.Errorf("unknown converter %q (supported: magick, native)", kind)
	}
}

// MagickConverter flattens and converts source images by invoking the
// ImageMagick binary as a subprocess, asking for PNG on stdout.
type MagickConverter struct {
	// Binary is the ImageMagick executable name. Empty means "magick".
	Binary string

	// Background is the flatten colour. Empty means "white".
	Background string
}

// Convert runs the converter subprocess and decodes its output. On a
// non-zero exit the returned error carries the captured diagnostic
// output.
func (c *MagickConverter) Convert(ctx context.Context, path string) (image.Image, error) {
	binary := c.Binary
	if binary == "" {
		binary = "magick"
	}
	background := c.Background
	if background == "" {
		background = "white"
	}

	cmd := exec.CommandContext(ctx, binary, path, "-background", background, "-flatten", "png:-")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		diag := strings.TrimSpace(stderr.String())
		if diag != "" {
			return nil, fmt.Errorf("convert %s: %w: %s", filepath.Base(path), err, diag)
		}
		return nil, fmt.Errorf("convert %s: %w", filepath.Base(path), err)
	}

	img, err := png.Decode(&stdout)
	if err != nil {
		return nil, fmt.Errorf("decode converter output for %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// NativeConverter decodes source images in-process and flattens any
// transparency onto an opaque background. It needs no external tool
// and is the implementation used in tests.
type NativeConverter struct {
	// Background is the flatten colour. Nil means white.
	Background color.Color
}

// Convert decodes the image at path and composites it over the
// background colour.
func (c *NativeConverter) Convert(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(path) // #nosec G304 - Source image path resolved by the pipeline
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s (format: %s): %w", filepath.Base(path), format, err)
	}

	return Flatten(img, c.Background), nil
}

// Flatten composites img over an opaque background colour. A nil
// background means white.
func Flatten(img image.Image, background color.Color) *image.NRGBA {
	if background == nil {
		background = color.White
	}

	bounds := img.Bounds()
	flat := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(flat, flat.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), img, bounds.Min, draw.Over)
	return flat
}
