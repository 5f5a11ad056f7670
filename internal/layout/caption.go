package layout

import "strings"

// Caption placement constants in pixels.
const (
	// CaptionBottomOffset separates the lowest caption baseline from
	// the canvas bottom edge.
	CaptionBottomOffset = 20

	// CaptionLineSpacing separates stacked caption lines.
	CaptionLineSpacing = 10
)

// MeasureFunc reports the rendered pixel width of a string at the
// chosen font and size.
type MeasureFunc func(s string) int

// WrapCaption greedily wraps caption text so that every line fits
// within maxWidth as reported by measure. A single word wider than
// maxWidth stays alone on its own line. An empty caption yields no
// lines.
func WrapCaption(caption string, maxWidth int, measure MeasureFunc) []string {
	words := strings.Fields(caption)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// CaptionBaselines returns the baseline Y coordinate for each of n
// caption lines on a canvas of the given height, in top-to-bottom
// reading order. Lines stack upward from the fixed bottom offset, so
// the last line always sits at canvasHeight-CaptionBottomOffset.
func CaptionBaselines(n, canvasHeight, lineHeight int) []int {
	if n < 1 {
		return nil
	}

	baselines := make([]int, n)
	y := canvasHeight - CaptionBottomOffset
	for i := n - 1; i >= 0; i-- {
		baselines[i] = y
		y -= lineHeight + CaptionLineSpacing
	}
	return baselines
}
