package ui

// RenderRingPanel wraps the ring display with a styled border.
// The rendering itself happens in the render package.
func RenderRingPanel(width, height int, content, legend string) string {
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content + "\n" + legend)
}
