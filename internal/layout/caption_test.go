package layout

import (
	"strings"
	"testing"
)

// charWidth measures strings at a fixed 7px per character, which is
// monotonic in string length.
func charWidth(s string) int {
	return 7 * len(s)
}

func TestWrapCaption(t *testing.T) {
	tests := []struct {
		name     string
		caption  string
		maxWidth int
		want     []string
	}{
		{
			name:     "fits on one line",
			caption:  "Wholesale Perfume",
			maxWidth: 7 * 30,
			want:     []string{"Wholesale Perfume"},
		},
		{
			name:     "wraps at width",
			caption:  "Fresh new fragrances for spring",
			maxWidth: 7 * 15,
			want:     []string{"Fresh new", "fragrances for", "spring"},
		},
		{
			name:     "one word per line",
			caption:  "alpha beta gamma",
			maxWidth: 7 * 6,
			want:     []string{"alpha", "beta", "gamma"},
		},
		{
			name:     "empty caption",
			caption:  "",
			maxWidth: 100,
			want:     nil,
		},
		{
			name:     "whitespace only",
			caption:  "   ",
			maxWidth: 100,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapCaption(tt.caption, tt.maxWidth, charWidth)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines %v, want %d lines %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWrapCaptionNeverExceedsMax(t *testing.T) {
	caption := "the quick brown fox jumps over the lazy dog again and again"
	for _, maxWidth := range []int{7 * 8, 7 * 12, 7 * 20, 7 * 40} {
		for _, line := range WrapCaption(caption, maxWidth, charWidth) {
			// A single overlong word is the only permitted overflow.
			if charWidth(line) > maxWidth && strings.Contains(line, " ") {
				t.Errorf("maxWidth=%d: line %q measures %d", maxWidth, line, charWidth(line))
			}
		}
	}
}

func TestWrapCaptionOverlongWordAlone(t *testing.T) {
	lines := WrapCaption("hi extraordinarily no", 7*10, charWidth)
	want := []string{"hi", "extraordinarily", "no"}
	if len(lines) != len(want) {
		t.Fatalf("got %v, want %v", lines, want)
	}
	for i := range lines {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWrapCaptionPreservesWordOrder(t *testing.T) {
	caption := "one two three four five six"
	lines := WrapCaption(caption, 7*10, charWidth)
	joined := strings.Join(lines, " ")
	if joined != caption {
		t.Errorf("rejoined lines = %q, want %q", joined, caption)
	}
}

func TestCaptionBaselines(t *testing.T) {
	const (
		canvasHeight = 1200
		lineHeight   = 38
	)

	t.Run("single line at fixed bottom offset", func(t *testing.T) {
		got := CaptionBaselines(1, canvasHeight, lineHeight)
		if len(got) != 1 {
			t.Fatalf("got %d baselines, want 1", len(got))
		}
		if got[0] != canvasHeight-CaptionBottomOffset {
			t.Errorf("baseline = %d, want %d", got[0], canvasHeight-CaptionBottomOffset)
		}
	})

	t.Run("multiple lines stack upward", func(t *testing.T) {
		got := CaptionBaselines(3, canvasHeight, lineHeight)
		if len(got) != 3 {
			t.Fatalf("got %d baselines, want 3", len(got))
		}
		// Bottom line stays anchored.
		if got[2] != canvasHeight-CaptionBottomOffset {
			t.Errorf("last baseline = %d, want %d", got[2], canvasHeight-CaptionBottomOffset)
		}
		// Reading order top to bottom with fixed spacing.
		for i := 1; i < 3; i++ {
			gap := got[i] - got[i-1]
			if gap != lineHeight+CaptionLineSpacing {
				t.Errorf("gap between line %d and %d = %d, want %d", i-1, i, gap, lineHeight+CaptionLineSpacing)
			}
		}
	})

	t.Run("zero lines", func(t *testing.T) {
		if got := CaptionBaselines(0, canvasHeight, lineHeight); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}
