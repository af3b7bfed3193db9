package core

import "math"

// Viewport maps the fixed logical world onto a grid of terminal cells.
// The world is stretched to fill the grid; a cell belongs to a world region
// when the cell's center lies inside it, so drawing and pointer hit-testing
// agree on which cells a region covers.
type Viewport struct {
	WorldW, WorldH float64
	Cols, Rows     int
}

// NewViewport creates a viewport for the given world and grid sizes.
// Degenerate grid sizes are raised to one cell.
func NewViewport(worldW, worldH float64, cols, rows int) Viewport {
	return Viewport{
		WorldW: worldW,
		WorldH: worldH,
		Cols:   Max(cols, 1),
		Rows:   Max(rows, 1),
	}
}

func (v Viewport) scaleX() float64 { return float64(v.Cols) / v.WorldW }
func (v Viewport) scaleY() float64 { return float64(v.Rows) / v.WorldH }

// ToCell returns the cell containing the world point (x, y).
func (v Viewport) ToCell(x, y float64) (col, row int) {
	return int(math.Floor(x * v.scaleX())), int(math.Floor(y * v.scaleY()))
}

// ToWorld returns the world coordinates of the center of a cell.
func (v Viewport) ToWorld(col, row int) (x, y float64) {
	return (float64(col) + 0.5) / v.scaleX(), (float64(row) + 0.5) / v.scaleY()
}

// RectToCells returns the cells whose centers fall inside r. Regions smaller
// than a cell still cover the one cell holding their center, so small
// sprites never disappear.
func (v Viewport) RectToCells(r RectF) Rect {
	x0, x1 := span(r.X, r.Right(), v.scaleX())
	y0, y1 := span(r.Y, r.Bottom(), v.scaleY())
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// span converts [lo, hi) in world units to the half-open cell range whose
// centers lie inside it.
func span(lo, hi, scale float64) (int, int) {
	first := int(math.Ceil(lo*scale - 0.5))
	end := int(math.Ceil(hi*scale - 0.5))
	if end <= first && hi > lo {
		first = int(math.Floor((lo + hi) / 2 * scale))
		end = first + 1
	}
	return first, end
}
