// Package bundle extracts product photo bundles into the image
// directory. Suppliers deliver photographs as zip or tar archives,
// possibly compressed with gzip, xz or bzip2; extraction keeps only
// recognised image files and flattens any directory structure.
package bundle

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// maxFileSize caps the decompressed size of a single bundle entry.
const maxFileSize = 100 * 1024 * 1024

// ExtractResult describes what an extraction produced.
type ExtractResult struct {
	// Files are the paths of the image files written into the
	// destination directory.
	Files []string

	// SkippedEntries counts archive entries that were not recognised
	// image files or failed validation.
	SkippedEntries int
}

// Extract detects the bundle format from its filename and unpacks the
// contained image files into destDir. Non-image entries are skipped
// and counted, not treated as errors.
func Extract(data []byte, filename, destDir string, logger hclog.Logger) (*ExtractResult, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	switch {
	case strings.HasSuffix(filename, ".tar.gz"), strings.HasSuffix(filename, ".tgz"):
		return extractTarGz(data, destDir, logger)
	case strings.HasSuffix(filename, ".tar.xz"), strings.HasSuffix(filename, ".txz"):
		return extractTarXz(data, destDir, logger)
	case strings.HasSuffix(filename, ".tar.bz2"), strings.HasSuffix(filename, ".tbz"), strings.HasSuffix(filename, ".tbz2"):
		return extractTarBz2(data, destDir, logger)
	case strings.HasSuffix(filename, ".zip"):
		return extractZip(data, destDir, logger)
	case strings.HasSuffix(filename, ".gz"),
		strings.HasSuffix(filename, ".xz"),
		strings.HasSuffix(filename, ".bz2"):
		return extractSingle(data, filename, destDir, logger)
	default:
		return nil, fmt.Errorf("unrecognised bundle format: %s (supported: .zip, .tar.gz, .tar.xz, .tar.bz2, .gz, .xz, .bz2)", filename)
	}
}
