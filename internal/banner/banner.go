// Package banner composes promotional banner images: product
// photographs arranged on a grid over a background, with a decorative
// spacer line and a wrapped caption in the event's colour scheme.
package banner

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/hashicorp/go-hclog"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/mwhitfield/bannersmith/internal/events"
	"github.com/mwhitfield/bannersmith/internal/layout"
	"github.com/mwhitfield/bannersmith/internal/raster"
)

// DefaultFontSize is the caption point size at 72 DPI.
const DefaultFontSize = 30

// trimTolerance is the per-channel colour tolerance when stripping
// blank margins from product photographs.
const trimTolerance = 8

// qrSize is the rendered size of the optional QR code in pixels.
const qrSize = 140

// Request describes one banner to compose.
type Request struct {
	// Items are the product item numbers; each resolves to
	// {ImageDir}/{item}.tif.
	Items []string

	// BackgroundPath locates the background image. Required.
	BackgroundPath string

	// Caption is the banner caption text. Required.
	Caption string

	// EventCode selects the colour scheme. Required.
	EventCode string

	// PreferredColumns forces a column count when positive.
	PreferredColumns int

	// QRText, when non-empty, renders a QR code onto the banner.
	QRText string
}

// Result is the outcome of a composition run.
type Result struct {
	// Image is the composed canvas, owned by the caller from here on.
	Image *image.NRGBA

	// Filename is the derived output filename (no directory).
	Filename string

	// Placed lists the item numbers composited onto the canvas.
	Placed []string

	// Skipped lists the item numbers dropped because their source was
	// missing or failed conversion.
	Skipped []string
}

// Composer runs the banner pipeline. Each Compose call owns its canvas
// exclusively; a Composer itself holds no per-run state and may be
// reused across runs.
type Composer struct {
	// ImageDir is the directory holding {item}.tif source files.
	ImageDir string

	// Events resolves event codes to colour schemes.
	Events *events.Table

	// Converter flattens source photographs. Nil selects the
	// ImageMagick subprocess converter.
	Converter raster.Converter

	// Loader reads the background image. Nil selects the file loader.
	Loader raster.Loader

	// Style selects the layout variant.
	Style Style

	// FilePrefix leads the derived output filename.
	FilePrefix string

	// FontPath optionally points at a TTF/OTF file for the caption.
	// Empty selects the built-in face.
	FontPath string

	// FontSize is the caption size in points. Zero means
	// DefaultFontSize.
	FontSize float64

	// Logger records skipped items and progress. Nil disables logging.
	Logger hclog.Logger

	// Now supplies the timestamp embedded in the filename. Nil means
	// time.Now; tests pin it.
	Now NowFunc
}

// Compose runs the full pipeline for req and returns the composed
// canvas together with the derived output filename. Individual items
// with missing or unconvertible sources are skipped with a warning;
// every other failure aborts the run.
func (c *Composer) Compose(ctx context.Context, req Request) (*Result, error) {
	logger := c.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	loader := c.Loader
	if loader == nil {
		loader = raster.NewFileLoader()
	}
	converter := c.Converter
	if converter == nil {
		converter = &raster.MagickConverter{}
	}

	if len(req.Items) == 0 {
		return nil, fmt.Errorf("no items to place")
	}
	if req.Caption == "" {
		return nil, fmt.Errorf("caption is required")
	}

	scheme, err := c.Events.Lookup(req.EventCode)
	if err != nil {
		return nil, err
	}

	background, err := loader.Load(req.BackgroundPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load background: %w", err)
	}
	canvas := imaging.Clone(background)
	width := canvas.Bounds().Dx()
	height := canvas.Bounds().Dy()

	plan, err := layout.PlanGrid(layout.GridConfig{
		Items:            len(req.Items),
		CanvasWidth:      width,
		CanvasHeight:     height,
		PreferredColumns: req.PreferredColumns,
		BottomBand:       c.Style.BottomBand,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to plan grid: %w", err)
	}
	logger.Debug("planned grid",
		"items", len(req.Items),
		"columns", plan.Columns, "rows", plan.Rows,
		"cell_width", plan.CellWidth, "cell_height", plan.CellHeight)

	result := &Result{}
	for i, item := range req.Items {
		img, err := c.prepareItem(ctx, converter, item, plan)
		if err != nil {
			logger.Warn("skipping item", "item", item, "error", err)
			result.Skipped = append(result.Skipped, item)
			continue
		}

		x, y := c.placeOffsets(plan, i, img.Bounds().Dx(), img.Bounds().Dy())
		canvas = imaging.Overlay(canvas, img, image.Pt(x, y), 1.0)
		result.Placed = append(result.Placed, item)
	}

	if len(result.Placed) == 0 {
		return nil, fmt.Errorf("no source images could be placed (%d skipped)", len(result.Skipped))
	}

	if c.Style.DrawSpacer {
		c.drawSpacer(canvas, width, height, scheme)
	}

	if err := c.drawCaption(canvas, width, height, req.Caption, scheme); err != nil {
		return nil, fmt.Errorf("failed to draw caption: %w", err)
	}

	if req.QRText != "" {
		canvas = c.drawQR(canvas, width, height, req.QRText, logger)
	}

	result.Image = canvas
	result.Filename = c.filename(scheme, req.Caption)
	return result, nil
}

// prepareItem resolves, converts and sizes one product photograph so
// that it fits its grid cell.
func (c *Composer) prepareItem(ctx context.Context, converter raster.Converter, item string, plan layout.GridPlan) (image.Image, error) {
	path := filepath.Join(c.ImageDir, item+".tif")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("source image missing: %s", path)
		}
		return nil, fmt.Errorf("failed to stat source image: %w", err)
	}

	img, err := converter.Convert(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("conversion failed: %w", err)
	}

	if c.Style.TrimMargins {
		img = raster.TrimMargins(img, trimTolerance)
	}
	return raster.FitCell(img, plan.CellWidth, plan.CellHeight), nil
}

// placeOffsets computes the canvas position for item index i. Images
// centre horizontally in their cell; vertically they either centre or
// bottom-align so they sit just above the spacer line, depending on
// the style.
func (c *Composer) placeOffsets(plan layout.GridPlan, i, imgWidth, imgHeight int) (x, y int) {
	x, y = plan.CellOrigin(i)
	x += layout.CenterOffset(plan.CellWidth, imgWidth)
	if c.Style.CenterVertically {
		y += layout.CenterOffset(plan.CellHeight, imgHeight)
	} else if gap := plan.CellHeight - imgHeight; gap > 0 {
		y += gap
	}
	return x, y
}

// drawSpacer paints the decorative horizontal line separating the
// image grid from the caption block.
func (c *Composer) drawSpacer(canvas *image.NRGBA, width, height int, scheme events.Scheme) {
	thickness := c.Style.SpacerThickness
	if thickness < 1 {
		thickness = 1
	}
	top := height - c.Style.BottomBand
	rect := image.Rect(layout.HorizontalSpacing, top, width-layout.HorizontalSpacing, top+thickness)
	draw.Draw(canvas, rect, image.NewUniform(scheme.SpacerColor), image.Point{}, draw.Src)
}

// drawCaption wraps the caption to the canvas width and renders the
// lines centred, stacked upward from the bottom offset. Lines draw in
// reverse order so the top-to-bottom reading order is preserved.
func (c *Composer) drawCaption(canvas *image.NRGBA, width, height int, caption string, scheme events.Scheme) error {
	size := c.FontSize
	if size == 0 {
		size = DefaultFontSize
	}
	face, err := loadFace(c.FontPath, size)
	if err != nil {
		return err
	}
	defer face.Close()

	measure := func(s string) int {
		return font.MeasureString(face, s).Ceil()
	}

	maxWidth := width - 2*layout.HorizontalSpacing
	lines := layout.WrapCaption(caption, maxWidth, measure)
	baselines := layout.CaptionBaselines(len(lines), height, face.Metrics().Height.Ceil())

	src := image.NewUniform(scheme.CaptionColor)
	for i := len(lines) - 1; i >= 0; i-- {
		lineWidth := measure(lines[i])
		d := &font.Drawer{
			Dst:  canvas,
			Src:  src,
			Face: face,
			Dot:  fixed.P((width-lineWidth)/2, baselines[i]),
		}
		d.DrawString(lines[i])
	}
	return nil
}

// drawQR renders a QR code into the bottom-right corner, above the
// caption band. A QR failure degrades to a warning; the banner is
// still produced.
func (c *Composer) drawQR(canvas *image.NRGBA, width, height int, text string, logger hclog.Logger) *image.NRGBA {
	qr, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		logger.Warn("failed to generate QR code", "error", err)
		return canvas
	}
	pos := image.Pt(width-qrSize-layout.HorizontalSpacing, height-c.Style.BottomBand-qrSize-layout.VerticalSpacing)
	return imaging.Overlay(canvas, qr.Image(qrSize), pos, 1.0)
}
