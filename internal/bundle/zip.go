package bundle

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/mwhitfield/bannersmith/internal/raster"
	"github.com/mwhitfield/bannersmith/internal/security"
)

// extractZip unpacks image files from a zip bundle.
func extractZip(data []byte, destDir string, logger hclog.Logger) (*ExtractResult, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to create zip reader: %w", err)
	}

	result := &ExtractResult{}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}

		if err := security.ValidateFilePath(f.Name, destDir); err != nil {
			logger.Warn("skipping unsafe bundle entry", "entry", f.Name, "error", err)
			result.SkippedEntries++
			continue
		}
		if !raster.IsImageFile(f.Name) {
			logger.Debug("skipping non-image bundle entry", "entry", f.Name)
			result.SkippedEntries++
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s in archive: %w", f.Name, err)
		}

		destPath, err := writeEntry(rc, destDir, filepath.Base(f.Name))
		rc.Close()
		if err != nil {
			return nil, err
		}
		logger.Debug("extracted bundle entry", "path", destPath)
		result.Files = append(result.Files, destPath)
	}

	if len(result.Files) == 0 {
		return nil, fmt.Errorf("bundle contains no image files")
	}
	return result, nil
}
