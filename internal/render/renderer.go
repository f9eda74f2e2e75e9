// Package render rasterizes ring placements onto terminal cells.
package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"orbit-rings.klederson.com/internal/orbit"
	"orbit-rings.klederson.com/internal/palette"
)

const (
	trackColor  = "#3A3A4A"
	centerColor = "#8888AA"
	trackDim    = 0.7

	glyphItem   = '●'
	glyphTrack  = '·'
	glyphCenter = '+'
)

// Cell is one rasterized terminal cell. An empty Color renders unstyled.
type Cell struct {
	Ch    rune
	Color string
}

// Frame is everything needed to draw one refresh.
type Frame struct {
	Rings      []orbit.Ring
	Placements []orbit.Placement
	ShowTracks bool
}

// Rasterize draws f into a grid of v.Height rows by v.Width columns.
// Later rings and items paint over earlier ones.
func Rasterize(v Viewport, f Frame) [][]Cell {
	grid := make([][]Cell, v.Height)
	for r := range grid {
		grid[r] = make([]Cell, v.Width)
		for c := range grid[r] {
			grid[r][c] = Cell{Ch: ' '}
		}
	}
	if v.Width == 0 || v.Height == 0 {
		return grid
	}

	if f.ShowTracks {
		for _, ring := range f.Rings {
			drawTrack(grid, v, ring.Radius, TrackColor(ring))
		}
	}
	if v.Contains(v.CenterX, v.CenterY) {
		grid[v.CenterY][v.CenterX] = Cell{Ch: glyphCenter, Color: centerColor}
	}
	for _, p := range f.Placements {
		drawItem(grid, v, p)
	}
	return grid
}

// TrackColor tints a ring's orbit path with a darkened copy of its first
// item's color.
func TrackColor(r orbit.Ring) string {
	if len(r.Items) == 0 {
		return trackColor
	}
	return palette.Dim(r.Items[0], trackDim)
}

func drawTrack(grid [][]Cell, v Viewport, radius float64, color string) {
	// Enough steps for roughly one sample per column along the circumference
	// capped by the viewport area: more samples cannot hit new cells
	want := math.Ceil(2 * math.Pi * radius / v.PxPerCol)
	steps := 8
	if limit := float64(2 * v.Width * v.Height); want > limit {
		steps = int(limit)
	} else if want > float64(steps) {
		steps = int(want)
	}
	for i := 0; i < steps; i++ {
		x, y := orbit.Center(float64(i)/float64(steps)*2*math.Pi, radius)
		col, row := v.ToCell(x, y)
		if v.Contains(col, row) && grid[row][col].Ch == ' ' {
			grid[row][col] = Cell{Ch: glyphTrack, Color: color}
		}
	}
}

// drawItem fills every cell whose center lies inside the item's disk, and
// always the cell under the item center so tiny items stay visible.
func drawItem(grid [][]Cell, v Viewport, p orbit.Placement) {
	cell := Cell{Ch: glyphItem, Color: p.Item}

	col, row := v.ToCell(p.CX, p.CY)
	minCol, minRow := v.ToCell(p.CX-p.Radius, p.CY-p.Radius)
	maxCol, maxRow := v.ToCell(p.CX+p.Radius, p.CY+p.Radius)
	minCol, minRow = max(minCol, 0), max(minRow, 0)
	maxCol, maxRow = min(maxCol, v.Width-1), min(maxRow, v.Height-1)
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			x, y := v.CellCenter(c, r)
			if math.Hypot(x-p.CX, y-p.CY) <= p.Radius {
				grid[r][c] = cell
			}
		}
	}
	if v.Contains(col, row) {
		grid[row][col] = cell
	}
}

// Render produces the styled ring display for f in width x height cells.
// pxPerCol <= 0 scales the outermost ring to fit.
func Render(width, height int, f Frame, pxPerCol float64) string {
	if width < 3 || height < 3 {
		return ""
	}
	extent := 0.0
	if n := len(f.Rings); n > 0 {
		extent = f.Rings[n-1].Radius + f.Rings[n-1].ItemRadius
	}
	v := NewViewport(width, height, extent, pxPerCol)
	return Style(Rasterize(v, f))
}

// Style turns a grid into a string, rendering runs of same-colored cells
// with one lipgloss style.
func Style(grid [][]Cell) string {
	var sb strings.Builder
	for r, row := range grid {
		var run strings.Builder
		runColor := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor == "" {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runColor)).Render(run.String()))
			}
			run.Reset()
		}
		for _, cell := range row {
			if cell.Color != runColor {
				flush()
				runColor = cell.Color
			}
			run.WriteRune(cell.Ch)
		}
		flush()
		if r < len(grid)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// RenderLegend shows one swatch per non-empty ring, innermost first.
func RenderLegend(width int, rings []orbit.Ring) string {
	if len(rings) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(trackColor)).Render("no items")
	}
	var parts []string
	for _, r := range rings {
		if len(r.Items) == 0 {
			continue
		}
		parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color(r.Items[0])).Render(string(glyphItem)))
	}
	legend := strings.Join(parts, " ")

	pad := (width - lipgloss.Width(legend)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + legend
}
