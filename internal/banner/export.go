package banner

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"

	"github.com/mwhitfield/bannersmith/internal/config"
	"github.com/mwhitfield/bannersmith/internal/events"
	"github.com/mwhitfield/bannersmith/internal/util"
)

// webpQuality is the lossy encoder quality for exported banners.
const webpQuality = 90

// NowFunc supplies the timestamp embedded in output filenames.
type NowFunc func() time.Time

// Filename derives the output filename from the naming parts: prefix,
// event display name and caption as slugs, and the month+day of now.
func Filename(prefix, eventName, caption string, now time.Time) string {
	if prefix == "" {
		prefix = config.DefaultFilePrefix
	}
	return fmt.Sprintf("%s-%s-%s-%s.webp",
		prefix, util.Slugify(eventName), util.Slugify(caption), now.Format("0102"))
}

// filename applies the composer's prefix and clock.
func (c *Composer) filename(scheme events.Scheme, caption string) string {
	now := c.Now
	if now == nil {
		now = time.Now
	}
	return Filename(c.FilePrefix, scheme.FullName, caption, now())
}

// Encode writes the canvas to w as lossy WEBP.
func Encode(w io.Writer, img image.Image) error {
	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, webpQuality)
	if err != nil {
		return fmt.Errorf("failed to create webp encoder options: %w", err)
	}
	if err := webp.Encode(w, img, options); err != nil {
		return fmt.Errorf("failed to encode webp: %w", err)
	}
	return nil
}

// Export encodes the canvas into dir/filename and returns the written
// path.
func Export(img image.Image, dir, filename string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, filename)
	out, err := os.Create(path) // #nosec G304 - Output path derived from configured directory
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}

	encodeErr := Encode(out, img)
	closeErr := out.Close()

	if encodeErr != nil {
		return "", encodeErr
	}
	if closeErr != nil {
		return "", fmt.Errorf("failed to close output file: %w", closeErr)
	}
	return path, nil
}
