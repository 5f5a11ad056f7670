// Package layout implements the placement math for banner composition:
// grid planning, cell centring, and caption wrapping. It is pure
// arithmetic with no image or I/O dependencies.
package layout

import (
	"fmt"
	"math"
)

// Fixed inter-cell spacing in pixels.
const (
	HorizontalSpacing = 50
	VerticalSpacing   = 30
)

// approxCellHeight is the constant cell height used by the area cost
// when searching for a column count. The true cell height depends on
// the row count being chosen, so the search scores candidates against
// this fixed estimate instead.
const approxCellHeight = 462

// GridPlan is the chosen grid geometry for one composition run.
type GridPlan struct {
	Columns    int
	Rows       int
	CellWidth  int
	CellHeight int
}

// GridConfig is the input to PlanGrid.
type GridConfig struct {
	// Items is the number of images to place. Must be at least 1.
	Items int

	// CanvasWidth and CanvasHeight are the background dimensions.
	CanvasWidth  int
	CanvasHeight int

	// PreferredColumns forces a column count when positive. Zero
	// selects the column count automatically.
	PreferredColumns int

	// BottomBand is the pixel height reserved below the grid for the
	// spacer line and caption block.
	BottomBand int
}

// PlanGrid computes the grid geometry for cfg.
//
// With a preferred column count the row count follows directly. Without
// one, the column count is estimated from the canvas aspect ratio and a
// small window around the estimate is searched for the candidate with
// the lowest approximate total area; ties keep the first minimum found.
func PlanGrid(cfg GridConfig) (GridPlan, error) {
	if cfg.Items < 1 {
		return GridPlan{}, fmt.Errorf("grid needs at least one item, got %d", cfg.Items)
	}
	if cfg.CanvasWidth < 1 || cfg.CanvasHeight < 1 {
		return GridPlan{}, fmt.Errorf("invalid canvas size %dx%d", cfg.CanvasWidth, cfg.CanvasHeight)
	}

	var cols, rows int
	switch {
	case cfg.Items == 1:
		cols, rows = 1, 1
	case cfg.PreferredColumns > 0:
		cols = cfg.PreferredColumns
		rows = ceilDiv(cfg.Items, cols)
	default:
		cols, rows = searchColumns(cfg.Items, cfg.CanvasWidth, cfg.CanvasHeight)
	}

	cellWidth := (cfg.CanvasWidth - (cols-1)*HorizontalSpacing) / cols
	if cellWidth < 1 {
		return GridPlan{}, fmt.Errorf("canvas width %d too small for %d columns", cfg.CanvasWidth, cols)
	}

	usableHeight := cfg.CanvasHeight - cfg.BottomBand
	cellHeight := (usableHeight - (rows-1)*VerticalSpacing) / rows
	if cellHeight < 1 {
		return GridPlan{}, fmt.Errorf("canvas height %d too small for %d rows", cfg.CanvasHeight, rows)
	}

	return GridPlan{
		Columns:    cols,
		Rows:       rows,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
	}, nil
}

// searchColumns scans a window around the aspect-ratio estimate and
// returns the column/row pair with the lowest approximate total area.
func searchColumns(items, width, height int) (cols, rows int) {
	estimate := int(math.Sqrt(float64(items) * float64(width) / float64(height)))

	lo := estimate - 2
	if lo < 1 {
		lo = 1
	}
	hi := estimate + 2
	if hi < lo {
		hi = lo
	}

	bestArea := math.MaxInt
	for c := lo; c <= hi; c++ {
		r := ceilDiv(items, c)
		cellWidth := (width - (c-1)*HorizontalSpacing) / c
		area := r * c * cellWidth * approxCellHeight
		if area < bestArea {
			bestArea = area
			cols, rows = c, r
		}
	}
	return cols, rows
}

// CellOrigin returns the top-left corner of the cell holding item
// index (row-major order).
func (p GridPlan) CellOrigin(index int) (x, y int) {
	col := index % p.Columns
	row := index / p.Columns
	x = col * (p.CellWidth + HorizontalSpacing)
	y = row * (p.CellHeight + VerticalSpacing)
	return x, y
}

// CenterOffset returns the offset that centres an image of the given
// size within a cell dimension, truncated toward zero.
func CenterOffset(cell, size int) int {
	return (cell - size) / 2
}

// ceilDiv returns ceil(a / b) for positive operands.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
