package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mwhitfield/bannersmith/internal/bundle"
	"github.com/mwhitfield/bannersmith/internal/config"
)

var assetsImageDir string

// assetsCmd represents the assets command
var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Manage product photograph assets",
	Long: `Manage the directory of product photographs that banner composition
reads from.`,
}

// assetsExtractCmd represents the assets extract command
var assetsExtractCmd = &cobra.Command{
	Use:   "extract <bundle>",
	Short: "Extract photographs from a compressed bundle",
	Long: `Extract product photographs from a compressed bundle into the image
directory.

Supported bundle formats: tar.gz, tar.xz, tar.bz2, zip, and single
gzip/xz/bzip2 compressed image files. Archive entries that are not
image files, or that would escape the destination directory, are
skipped.

Examples:
  # Extract a supplier drop into the configured image directory
  bannersmith assets extract supplier-drop.tar.gz

  # Extract into an explicit directory
  bannersmith assets extract --image-dir ./tifs photos.zip`,
	Args: cobra.ExactArgs(1),
	RunE: runAssetsExtract,
}

func init() {
	assetsExtractCmd.Flags().StringVar(&assetsImageDir, "image-dir", "", "destination directory (overrides TIF_PATH)")
	assetsCmd.AddCommand(assetsExtractCmd)
}

// runAssetsExtract executes the assets extract command.
func runAssetsExtract(cmd *cobra.Command, args []string) error {
	bundlePath := args[0]

	cfg := config.Load()
	destDir := cfg.ImageDir
	if assetsImageDir != "" {
		destDir = assetsImageDir
	}
	if destDir == "" {
		return fmt.Errorf("image directory not configured (set %s or pass --image-dir)", config.EnvImageDir)
	}

	if err := os.MkdirAll(destDir, 0o750); err != nil {
		return fmt.Errorf("failed to create image directory: %w", err)
	}

	data, err := os.ReadFile(bundlePath) // #nosec G304 - user-supplied bundle path is intentional
	if err != nil {
		return fmt.Errorf("failed to read bundle: %w", err)
	}

	result, err := bundle.Extract(data, filepath.Base(bundlePath), destDir, newLogger(cmd))
	if err != nil {
		return fmt.Errorf("failed to extract bundle: %w", err)
	}

	fmt.Printf("Extracted %d file(s) to %s", len(result.Files), destDir)
	if result.SkippedEntries > 0 {
		fmt.Printf(" (%d entries skipped)", result.SkippedEntries)
	}
	fmt.Println()
	return nil
}
