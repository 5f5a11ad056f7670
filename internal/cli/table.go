package cli

import "strings"

// Table formats rows of strings as aligned, plain-text columnar output
// for terminal display.
type Table struct {
	headers   []string
	rows      [][]string
	maxWidths map[int]int
	padding   int
}

// NewTable creates a table with the given column headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:   headers,
		maxWidths: make(map[int]int),
		padding:   2,
	}
}

// SetColumnMaxWidth limits a column to the given width. Cells wider
// than the limit are word-wrapped across multiple lines.
func (t *Table) SetColumnMaxWidth(col, width int) {
	t.maxWidths[col] = width
}

// AddRow appends a row of cells to the table.
func (t *Table) AddRow(cells []string) {
	t.rows = append(t.rows, cells)
}

// Render returns the formatted table as a string, including a header
// line and a dashed separator.
func (t *Table) Render() string {
	// Wrap each cell up front so width calculation sees the final lines.
	wrapped := make([][][]string, len(t.rows))
	for r, row := range t.rows {
		wrapped[r] = make([][]string, len(row))
		for c, cell := range row {
			if max, ok := t.maxWidths[c]; ok && max > 0 && len(cell) > max {
				wrapped[r][c] = wrapText(cell, max)
			} else {
				wrapped[r][c] = []string{cell}
			}
		}
	}

	widths := make([]int, len(t.headers))
	for c, h := range t.headers {
		widths[c] = len(h)
	}
	for _, row := range wrapped {
		for c, cell := range row {
			if c >= len(widths) {
				continue
			}
			for _, line := range cell {
				if len(line) > widths[c] {
					widths[c] = len(line)
				}
			}
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var b strings.Builder

	cols := make([]string, len(t.headers))
	for c, h := range t.headers {
		cols[c] = padRight(h, widths[c])
	}
	b.WriteString(strings.Join(cols, gap))
	b.WriteString("\n")

	for c, w := range widths {
		cols[c] = strings.Repeat("-", w)
	}
	b.WriteString(strings.Join(cols, gap))
	b.WriteString("\n")

	for _, row := range wrapped {
		lines := 1
		for _, cell := range row {
			if len(cell) > lines {
				lines = len(cell)
			}
		}
		for l := 0; l < lines; l++ {
			for c := range t.headers {
				text := ""
				if c < len(row) && l < len(row[c]) {
					text = row[c][l]
				}
				cols[c] = padRight(text, widths[c])
			}
			b.WriteString(strings.TrimRight(strings.Join(cols, gap), " "))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// padRight pads s with spaces to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// wrapText breaks text into lines no longer than width, splitting at
// word boundaries where possible and mid-word otherwise.
func wrapText(text string, width int) []string {
	if width <= 0 || len(text) <= width {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	var lines []string
	current := ""
	for _, word := range words {
		for len(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}

		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if len(candidate) <= width {
			current = candidate
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	return lines
}
