package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple words",
			input: "Wholesale Perfume",
			want:  "wholesale-perfume",
		},
		{
			name:  "apostrophe stripped",
			input: "Mother's Day",
			want:  "mothers-day",
		},
		{
			name:  "typographic apostrophe stripped",
			input: "Valentine’s Day",
			want:  "valentines-day",
		},
		{
			name:  "extra whitespace collapsed",
			input: "  Summer   Sale ",
			want:  "summer-sale",
		},
		{
			name:  "already lowercase",
			input: "clearance",
			want:  "clearance",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
