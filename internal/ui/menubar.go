package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"orbit-rings.klederson.com/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, source string, running bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"Space", " pause"},
		{"+/-", " radius"},
		{"[/]", " density"},
		{"V", "elocity"},
		{"T", "racks"},
		{"R", "eseed"},
		{"Q", "uit"},
	}

	var menu strings.Builder
	for _, k := range keys {
		menu.WriteString("  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label))
	}

	status := StyleStatusRunning.Render("RUNNING")
	if !running {
		status = StyleStatusPaused.Render("PAUSED")
	}

	sourceInfo := StyleMenuLabel.Render(fmt.Sprintf("Palette: %s", source))

	left := StyleMenuKey.Render(title) + menu.String()
	right := status + "  " + sourceInfo + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
