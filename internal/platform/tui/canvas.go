package tui

import (
	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
)

// Visual characters for rendering
const (
	BlockChar      = '█'
	BackgroundChar = '·'
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2

// CellCanvas draws a pixel field onto a character Screen. The field is
// scaled to the largest viewport that fits the screen while keeping its
// aspect ratio, and centered.
type CellCanvas struct {
	screen *core.Screen
	field  config.FieldConfig
}

// NewCellCanvas creates a canvas drawing field pixels into screen.
func NewCellCanvas(screen *core.Screen, field config.FieldConfig) *CellCanvas {
	return &CellCanvas{screen: screen, field: field}
}

// viewport is the screen area the field is mapped to, in cells.
type viewport struct {
	x, y, cols, rows int
}

// Viewport returns the cell rectangle the field occupies.
func (c *CellCanvas) Viewport() core.Rect {
	v := c.viewport()
	return core.NewRect(v.x, v.y, v.cols, v.rows)
}

func (c *CellCanvas) viewport() viewport {
	sw, sh := c.screen.Width(), c.screen.Height()
	fw, fh := max(1, c.field.Width), max(1, c.field.Height)

	rows := sh
	cols := rows * fw * cellAspect / fh
	if cols > sw {
		cols = sw
		rows = cols * fh / (fw * cellAspect)
	}
	cols, rows = max(1, cols), max(1, rows)

	return viewport{
		x:    (sw - cols) / 2,
		y:    (sh - rows) / 2,
		cols: cols,
		rows: rows,
	}
}

// cellX maps a field x coordinate to a screen column.
func (v viewport) cellX(x, fieldW int) int {
	return v.x + floorDiv(x*v.cols, max(1, fieldW))
}

// cellY maps a field y coordinate to a screen row.
func (v viewport) cellY(y, fieldH int) int {
	return v.y + floorDiv(y*v.rows, max(1, fieldH))
}

// Fill clears the screen and paints the viewport background.
func (c *CellCanvas) Fill(col core.Color) {
	c.screen.Clear()
	if col == core.ColorBlack {
		return
	}
	v := c.viewport()
	c.screen.DrawRect(core.NewRect(v.x, v.y, v.cols, v.rows), BackgroundChar, col)
}

// FillRect paints a solid block, clipped to the viewport. Any rectangle with
// a non-zero visible area covers at least one cell per axis.
func (c *CellCanvas) FillRect(r core.Rect, col core.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	v := c.viewport()

	x0, x1 := v.cellX(r.X, c.field.Width), v.cellX(r.Right(), c.field.Width)
	y0, y1 := v.cellY(r.Y, c.field.Height), v.cellY(r.Bottom(), c.field.Height)
	if x1 == x0 {
		x1++
	}
	if y1 == y0 && r.Bottom() > 0 {
		y1++
	}

	x0, x1 = max(x0, v.x), min(x1, v.x+v.cols)
	y0, y1 = max(y0, v.y), min(y1, v.y+v.rows)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	c.screen.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), BlockChar, col)
}

// DrawText draws text centered on the column that cx maps to.
// Terminal text has a single size, so size is ignored.
func (c *CellCanvas) DrawText(cx, y int, text string, _ int, col core.Color) {
	v := c.viewport()
	c.screen.DrawTextCentered(v.cellX(cx, c.field.Width), v.cellY(y, c.field.Height), text, col)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
