package bundle

import (
	"archive/tar"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/ulikunitz/xz"

	"github.com/mwhitfield/bannersmith/internal/raster"
	"github.com/mwhitfield/bannersmith/internal/security"
)

// extractTarGz unpacks image files from a tar.gz bundle.
func extractTarGz(data []byte, destDir string, logger hclog.Logger) (*ExtractResult, error) {
	gzr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzr.Close()

	return extractTar(gzr, destDir, logger)
}

// extractTarXz unpacks image files from a tar.xz bundle.
func extractTarXz(data []byte, destDir string, logger hclog.Logger) (*ExtractResult, error) {
	xzr, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create xz reader: %w", err)
	}

	return extractTar(xzr, destDir, logger)
}

// extractTarBz2 unpacks image files from a tar.bz2 bundle.
func extractTarBz2(data []byte, destDir string, logger hclog.Logger) (*ExtractResult, error) {
	return extractTar(bzip2.NewReader(bytes.NewReader(data)), destDir, logger)
}

// extractTar walks a tar stream and writes every recognised image file
// into destDir, flattening directory structure to the base name.
func extractTar(r io.Reader, destDir string, logger hclog.Logger) (*ExtractResult, error) {
	tr := tar.NewReader(r)
	result := &ExtractResult{}

	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read tar archive: %w", err)
		}

		if header.Typeflag != tar.TypeReg {
			continue
		}

		if err := security.ValidateFilePath(header.Name, destDir); err != nil {
			logger.Warn("skipping unsafe bundle entry", "entry", header.Name, "error", err)
			result.SkippedEntries++
			continue
		}
		if !raster.IsImageFile(header.Name) {
			logger.Debug("skipping non-image bundle entry", "entry", header.Name)
			result.SkippedEntries++
			continue
		}

		destPath, err := writeEntry(tr, destDir, filepath.Base(header.Name))
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

// writeEntry copies one archive entry to destDir under name, capped at
// maxFileSize.
func writeEntry(r io.Reader, destDir, name string) (string, error) {
	destPath := filepath.Join(destDir, name)

	out, err := os.Create(destPath) // #nosec G304 - Destination inside the configured image directory
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}

	limitedReader := security.NewLimitedReader(r, maxFileSize)
	_, copyErr := io.Copy(out, limitedReader)
	closeErr := out.Close()

	if copyErr != nil {
		return "", fmt.Errorf("failed to extract %s: %w", name, copyErr)
	}
	if closeErr != nil {
		return "", fmt.Errorf("failed to close %s: %w", name, closeErr)
	}

	return destPath, nil
}
