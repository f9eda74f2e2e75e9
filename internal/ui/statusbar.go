package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status is the data shown in the bottom bar.
type Status struct {
	Running bool
	Items   int
	Rings   int
	Speed   string
	Seed    string
	FPS     float64
	Scale   float64 // pixels per column
	Err     error   // last rejected change, if any
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, s Status) string {
	state := StyleStatusRunning.Render("[RUNNING]")
	if !s.Running {
		state = StyleStatusPaused.Render("[PAUSED]")
	}

	info := fmt.Sprintf(" Items: %d  Rings: %d  Speed: %s  Seed: %s  FPS: %.0f  Scale: %.1fpx/col",
		s.Items, s.Rings, s.Speed, s.Seed, s.FPS, s.Scale)

	content := state + StyleStatusBar.Render(info)
	if s.Err != nil {
		content += "  " + StyleStatusError.Render(s.Err.Error())
	}

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
