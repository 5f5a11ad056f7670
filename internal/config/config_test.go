package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGet(t *testing.T) {
	t.Run("set variable wins", func(t *testing.T) {
		t.Setenv("BANNERSMITH_TEST_VAL", "direct")
		if got := Get("BANNERSMITH_TEST_VAL", "fallback"); got != "direct" {
			t.Errorf("Get = %q, want %q", got, "direct")
		}
	})

	t.Run("file variant", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "secret")
		if err := os.WriteFile(path, []byte("  from-file\n"), 0o600); err != nil {
			t.Fatalf("writing file: %v", err)
		}
		t.Setenv("BANNERSMITH_TEST_VAL_FILE", path)
		if got := Get("BANNERSMITH_TEST_VAL", "fallback"); got != "from-file" {
			t.Errorf("Get = %q, want %q", got, "from-file")
		}
	})

	t.Run("default", func(t *testing.T) {
		if got := Get("BANNERSMITH_TEST_UNSET", "fallback"); got != "fallback" {
			t.Errorf("Get = %q, want %q", got, "fallback")
		}
	})
}

func TestGetInt(t *testing.T) {
	t.Setenv("BANNERSMITH_TEST_INT", "42")
	if got := GetInt("BANNERSMITH_TEST_INT", 7); got != 42 {
		t.Errorf("GetInt = %d, want 42", got)
	}

	t.Setenv("BANNERSMITH_TEST_INT", "not-a-number")
	if got := GetInt("BANNERSMITH_TEST_INT", 7); got != 7 {
		t.Errorf("GetInt with bad value = %d, want default 7", got)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvImageDir, "/srv/photos")
	t.Setenv(EnvOutputDir, "")
	t.Setenv(EnvFilePrefix, "")

	cfg := Load()
	if cfg.ImageDir != "/srv/photos" {
		t.Errorf("ImageDir = %q, want %q", cfg.ImageDir, "/srv/photos")
	}
	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, ".")
	}
	if cfg.FilePrefix != DefaultFilePrefix {
		t.Errorf("FilePrefix = %q, want %q", cfg.FilePrefix, DefaultFilePrefix)
	}
}
