package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"orbit-rings.klederson.com/internal/orbit"
)

// RenderRingList renders the scrollable list of ring levels. The title
// stays fixed at the top; only the ring entries scroll.
func RenderRingList(rings []*orbit.Instance, width, height, cursor int) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}

	title := StylePanelTitle.Render(fmt.Sprintf("RINGS [%d]", len(rings)))
	separator := StyleSeparator.Render(strings.Repeat("-", innerW))
	headerLines := []string{title, separator}

	innerH := height - 2
	if innerH < len(headerLines)+1 {
		innerH = len(headerLines) + 1
	}
	space := innerH - len(headerLines)

	var lines []string
	if len(rings) == 0 {
		lines = append(lines, "", StyleHelp.Render(" No items..."), StyleHelp.Render(" Load a palette"))
	} else {
		const linesPerRing = 3 // 2 content + 1 blank
		maxVisible := max(space/linesPerRing, 1)

		viewStart := 0
		if cursor >= maxVisible {
			viewStart = cursor - maxVisible + 1
		}
		for i := viewStart; i < len(rings) && len(lines) < space; i++ {
			lines = append(lines, renderRingEntry(rings[i], innerW, i == cursor)...)
		}
	}

	if len(lines) > space {
		lines = lines[:space]
	}
	for len(lines) < space {
		lines = append(lines, "")
	}

	content := strings.Join(append(headerLines, lines...), "\n")
	rendered := StylePanelBorder.Width(width - 2).Height(innerH).Render(content)

	// lipgloss Height() only sets a minimum; clamp overflow
	out := strings.Split(rendered, "\n")
	if len(out) > height {
		out = out[:height]
	}
	return strings.Join(out, "\n")
}

func renderRingEntry(in *orbit.Instance, maxW int, isCursor bool) []string {
	swatch := " "
	if len(in.Items) > 0 {
		swatch = lipgloss.NewStyle().Foreground(lipgloss.Color(in.Items[0])).Render("●")
	}

	head := fmt.Sprintf("L%-2d r=%.0f  %d/%d", in.Level, in.Radius, len(in.Items), in.Capacity)
	if isCursor {
		head = StyleCursorLine.Render(truncate(head, maxW-2))
	} else {
		head = StyleRingLabel.Render(truncate(head, maxW-2))
	}

	lo, hi := speedBounds(in.Driver().Speeds())
	detail := StyleRingDetail.Render(truncate(fmt.Sprintf("   ω %.4f..%.4f", lo, hi), maxW))
	if !in.Mounted() {
		detail = StyleHelp.Render(truncate("   stopped", maxW))
	}

	return []string{swatch + " " + head, detail, ""}
}

func speedBounds(speeds []float64) (lo, hi float64) {
	for i, s := range speeds {
		if i == 0 || s < lo {
			lo = s
		}
		if i == 0 || s > hi {
			hi = s
		}
	}
	return lo, hi
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
