package raster

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// solidImage builds a w x h image filled with fill, optionally framed
// by a border of margin pixels in borderColor.
func solidImage(w, h, border int, fill, borderColor color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < border || y < border || x >= w-border || y >= h-border {
				img.Set(x, y, borderColor)
			} else {
				img.Set(x, y, fill)
			}
		}
	}
	return img
}

func TestFitCellShrinks(t *testing.T) {
	tests := []struct {
		name       string
		imgW, imgH int
		cellW      int
		cellH      int
		wantMaxW   int
		wantMaxH   int
	}{
		{name: "wide image", imgW: 1000, imgH: 400, cellW: 500, cellH: 500, wantMaxW: 500, wantMaxH: 200},
		{name: "tall image", imgW: 400, imgH: 1000, cellW: 500, cellH: 500, wantMaxW: 200, wantMaxH: 500},
		{name: "square into square", imgW: 800, imgH: 800, cellW: 200, cellH: 200, wantMaxW: 200, wantMaxH: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := solidImage(tt.imgW, tt.imgH, 0, color.White, color.White)
			got := FitCell(img, tt.cellW, tt.cellH)
			b := got.Bounds()
			if b.Dx() > tt.wantMaxW || b.Dy() > tt.wantMaxH {
				t.Errorf("FitCell result %dx%d exceeds %dx%d", b.Dx(), b.Dy(), tt.wantMaxW, tt.wantMaxH)
			}
		})
	}
}

func TestFitCellNeverEnlarges(t *testing.T) {
	img := solidImage(120, 80, 0, color.White, color.White)
	got := FitCell(img, 500, 500)
	b := got.Bounds()
	if b.Dx() != 120 || b.Dy() != 80 {
		t.Errorf("small image resized to %dx%d, want unchanged 120x80", b.Dx(), b.Dy())
	}
}

func TestTrimMargins(t *testing.T) {
	red := color.NRGBA{R: 0xff, A: 0xff}

	t.Run("strips uniform border", func(t *testing.T) {
		img := solidImage(100, 60, 10, red, color.White)
		got := TrimMargins(img, 8)
		b := got.Bounds()
		if b.Dx() != 80 || b.Dy() != 40 {
			t.Errorf("trimmed to %dx%d, want 80x40", b.Dx(), b.Dy())
		}
	})

	t.Run("no border left untouched", func(t *testing.T) {
		img := solidImage(50, 50, 0, red, red)
		got := TrimMargins(img, 8)
		b := got.Bounds()
		// Entirely uniform image counts as all margin and stays as-is.
		if b.Dx() != 50 || b.Dy() != 50 {
			t.Errorf("uniform image trimmed to %dx%d, want 50x50", b.Dx(), b.Dy())
		}
	})

	t.Run("tolerance absorbs near-margin pixels", func(t *testing.T) {
		nearWhite := color.NRGBA{R: 0xfc, G: 0xfc, B: 0xfc, A: 0xff}
		img := solidImage(40, 40, 5, red, nearWhite)
		// Reference is the near-white corner; everything within
		// tolerance of it is margin.
		got := TrimMargins(img, 8)
		b := got.Bounds()
		if b.Dx() != 30 || b.Dy() != 30 {
			t.Errorf("trimmed to %dx%d, want 30x30", b.Dx(), b.Dy())
		}
	})
}

func TestNativeConverterFlattens(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "item.png")

	// Half-transparent red source.
	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			src.Set(x, y, color.NRGBA{R: 0xff, A: 0x80})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating source: %v", err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatalf("encoding source: %v", err)
	}
	f.Close()

	conv := &NativeConverter{}
	img, err := conv.Convert(context.Background(), path)
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}

	_, _, _, a := img.At(5, 5).RGBA()
	if a != 0xffff {
		t.Errorf("flattened pixel alpha = %#x, want opaque", a)
	}
}

func TestNativeConverterMissingFile(t *testing.T) {
	conv := &NativeConverter{}
	if _, err := conv.Convert(context.Background(), filepath.Join(t.TempDir(), "absent.tif")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNewConverter(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		wantErr bool
	}{
		{name: "magick", kind: "magick"},
		{name: "native", kind: "native"},
		{name: "unknown", kind: "wand", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConverter(tt.kind)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewConverter(%q) error = %v, wantErr %v", tt.kind, err, tt.wantErr)
			}
		})
	}
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "123456.tif", want: true},
		{path: "photo.TIFF", want: true},
		{path: "bg.png", want: true},
		{path: "readme.txt", want: false},
		{path: "archive.tar.gz", want: false},
	}

	for _, tt := range tests {
		if got := IsImageFile(tt.path); got != tt.want {
			t.Errorf("IsImageFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
