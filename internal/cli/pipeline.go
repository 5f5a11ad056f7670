package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mwhitfield/bannersmith/internal/banner"
	"github.com/mwhitfield/bannersmith/internal/config"
	"github.com/mwhitfield/bannersmith/internal/events"
	"github.com/mwhitfield/bannersmith/internal/raster"
)

var (
	// Flags shared by commands that run the composition pipeline
	pipelineEventsFile string
	pipelineImageDir   string
	pipelineConverter  string
	pipelineStyle      string
	pipelineFont       string
)

// addPipelineFlags registers the flags shared by every command that
// builds a Composer.
func addPipelineFlags(fs *pflag.FlagSet) {
	fs.StringVar(&pipelineEventsFile, "events-file", "events.json", "path to the event scheme table")
	fs.StringVar(&pipelineImageDir, "image-dir", "", "directory holding {item}.tif sources (overrides TIF_PATH)")
	fs.StringVar(&pipelineConverter, "converter", "magick", "source image converter (magick, native)")
	fs.StringVar(&pipelineStyle, "style", "grid", "layout style (grid, showcase)")
	fs.StringVar(&pipelineFont, "font", "", "TTF/OTF font file for the caption (default: built-in)")
}

// buildComposer resolves configuration and constructs the pipeline for
// a command invocation.
func buildComposer(cmd *cobra.Command) (*banner.Composer, config.Config, error) {
	cfg := config.Load()
	if pipelineImageDir != "" {
		cfg.ImageDir = pipelineImageDir
	}
	if pipelineFont != "" {
		cfg.FontPath = pipelineFont
	}
	if cfg.ImageDir == "" {
		return nil, cfg, fmt.Errorf("image directory not configured (set %s or pass --image-dir)", config.EnvImageDir)
	}

	table, err := events.LoadTable(pipelineEventsFile)
	if err != nil {
		return nil, cfg, fmt.Errorf("failed to load events: %w", err)
	}

	converter, err := raster.NewConverter(pipelineConverter)
	if err != nil {
		return nil, cfg, err
	}

	style, err := banner.StyleByName(pipelineStyle)
	if err != nil {
		return nil, cfg, err
	}

	composer := &banner.Composer{
		ImageDir:   cfg.ImageDir,
		Events:     table,
		Converter:  converter,
		Style:      style,
		FilePrefix: cfg.FilePrefix,
		FontPath:   cfg.FontPath,
		Logger:     newLogger(cmd),
	}
	return composer, cfg, nil
}
