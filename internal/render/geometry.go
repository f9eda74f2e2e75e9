package render

import (
	"math"

	"orbit-rings.klederson.com/internal/config"
)

// Viewport maps ring coordinates (pixels, origin at the common center, y
// down) onto terminal cells.
type Viewport struct {
	Width, Height int
	CenterX       int
	CenterY       int
	PxPerCol      float64 // Horizontal pixels covered by one column
}

// NewViewport centers a viewport in width x height cells. pxPerCol <= 0
// fits extent (pixels from center to the outermost edge) into the area.
func NewViewport(width, height int, extent, pxPerCol float64) Viewport {
	v := Viewport{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
	if pxPerCol <= 0 {
		pxPerCol = FitScale(width, height, extent)
	}
	v.PxPerCol = pxPerCol
	return v
}

// FitScale returns the smallest pixels-per-column that keeps a circle of
// radius extent inside the area, accounting for terminal aspect ratio.
func FitScale(width, height int, extent float64) float64 {
	halfW := float64(width/2 - 1)
	halfH := float64(height/2-1) / config.AspectRatio
	avail := math.Min(halfW, halfH)
	if avail < 1 {
		avail = 1
	}
	if extent <= 0 {
		return config.PixelsPerCell
	}
	return extent / avail
}

// cellLimit bounds cell offsets so far-off points convert to int safely.
const cellLimit = 1 << 30

// ToCell converts a point to the nearest cell. Points far outside the
// viewport saturate instead of overflowing.
func (v Viewport) ToCell(x, y float64) (col, row int) {
	col = v.CenterX + cellOffset(x/v.PxPerCol)
	row = v.CenterY + cellOffset(y/v.PxPerCol*config.AspectRatio)
	return col, row
}

func cellOffset(f float64) int {
	f = math.Round(f)
	switch {
	case f > cellLimit:
		return cellLimit
	case f < -cellLimit:
		return -cellLimit
	case math.IsNaN(f):
		return cellLimit
	}
	return int(f)
}

// CellCenter converts a cell back to the point at its center.
func (v Viewport) CellCenter(col, row int) (x, y float64) {
	x = float64(col-v.CenterX) * v.PxPerCol
	y = float64(row-v.CenterY) * v.PxPerCol / config.AspectRatio
	return x, y
}

// Contains reports whether a cell is inside the viewport.
func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && col < v.Width && row >= 0 && row < v.Height
}
