package bundle

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/ulikunitz/xz"

	"github.com/mwhitfield/bannersmith/internal/raster"
)

// extractSingle decompresses a standalone .gz/.xz/.bz2 file whose
// decompressed name must be a recognised image file.
func extractSingle(data []byte, filename, destDir string, logger hclog.Logger) (*ExtractResult, error) {
	var (
		r    io.Reader
		name string
	)

	switch {
	case strings.HasSuffix(filename, ".gz"):
		gzr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		r, name = gzr, strings.TrimSuffix(filename, ".gz")
	case strings.HasSuffix(filename, ".xz"):
		xzr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		r, name = xzr, strings.TrimSuffix(filename, ".xz")
	case strings.HasSuffix(filename, ".bz2"):
		r, name = bzip2.NewReader(bytes.NewReader(data)), strings.TrimSuffix(filename, ".bz2")
	default:
		return nil, fmt.Errorf("unrecognised compressed file: %s", filename)
	}

	if !raster.IsImageFile(name) {
		return nil, fmt.Errorf("compressed file %s is not an image", filename)
	}

	destPath, err := writeEntry(r, destDir, name)
	if err != nil {
		return nil, err
	}
	logger.Debug("decompressed bundle file", "path", destPath)

	return &ExtractResult{Files: []string{destPath}}, nil
}
