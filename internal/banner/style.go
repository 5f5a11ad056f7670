package banner

import (
	"fmt"
	"strings"
)

// Style collects the layout options that used to be spread across
// near-identical script variants. A preset selects a coherent set; the
// individual fields remain overridable.
type Style struct {
	// TrimMargins strips uniform blank borders from each product
	// photograph before sizing.
	TrimMargins bool

	// DrawSpacer paints the decorative line above the caption block.
	DrawSpacer bool

	// CenterVertically centres images in their cells. When false,
	// images bottom-align so they visually sit above the spacer.
	CenterVertically bool

	// SpacerThickness is the spacer line height in pixels.
	SpacerThickness int

	// BottomBand is the pixel height reserved below the grid for the
	// spacer and caption.
	BottomBand int
}

// DefaultStyle is the grid preset.
func DefaultStyle() Style {
	return Style{
		DrawSpacer:       true,
		CenterVertically: true,
		SpacerThickness:  4,
		BottomBand:       120,
	}
}

// StyleByName resolves a preset name.
//
// "grid" centres images in their cells without trimming; "showcase"
// trims margins and bottom-aligns images above a heavier spacer.
func StyleByName(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "", "grid":
		return DefaultStyle(), nil
	case "showcase":
		return Style{
			TrimMargins:     true,
			DrawSpacer:      true,
			SpacerThickness: 6,
			BottomBand:      140,
		}, nil
	default:
		return Style{}, fmt.Errorf("unknown style %q (supported: grid, showcase)", name)
	}
}
