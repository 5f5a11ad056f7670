// Package config resolves runtime configuration for Bannersmith.
//
// Configuration comes from the environment (optionally seeded from a
// .env file) and is resolved once at the CLI boundary. The resulting
// Config is passed explicitly into the pipeline so that no package
// below the CLI reads ambient state.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names recognised by Load.
const (
	EnvImageDir   = "TIF_PATH"
	EnvOutputDir  = "BANNER_OUTPUT_DIR"
	EnvFilePrefix = "BANNER_PREFIX"
	EnvFontPath   = "BANNER_FONT"
)

// DefaultFilePrefix is the leading component of generated filenames.
const DefaultFilePrefix = "4sgm"

// Config holds the resolved runtime configuration.
type Config struct {
	// ImageDir is the directory containing per-item source images
	// named {item}.tif.
	ImageDir string

	// OutputDir is where composed banners are written.
	OutputDir string

	// FilePrefix is the leading component of output filenames.
	FilePrefix string

	// FontPath optionally points at a TTF/OTF file used for the
	// caption. Empty selects the built-in face.
	FontPath string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present; a missing file is not
// an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ImageDir:   Get(EnvImageDir, ""),
		OutputDir:  Get(EnvOutputDir, "."),
		FilePrefix: Get(EnvFilePrefix, DefaultFilePrefix),
		FontPath:   Get(EnvFontPath, ""),
	}
}

// Get returns the value of the environment variable `key` if set.
// If not set, and `key + "_FILE"` is set, the file at that path is read
// and its trimmed contents are returned. If neither are set, def is
// returned.
func Get(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if path := os.Getenv(key + "_FILE"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			return strings.TrimSpace(string(data))
		}
	}
	return def
}

// GetInt returns the integer value of the environment variable `key`.
// If parsing fails or the variable is unset, def is returned.
func GetInt(key string, def int) int {
	if val := Get(key, ""); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return def
}
