package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the ring panel and ring list horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, ringPanel, ringList, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, ringPanel, ringList)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
