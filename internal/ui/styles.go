package ui

import "github.com/charmbracelet/lipgloss"

// Night-sky palette
var (
	ColorBright    = lipgloss.Color("#E0E0FF")
	ColorText      = lipgloss.Color("#A0A0C8")
	ColorMuted     = lipgloss.Color("#5A5A7A")
	ColorFaint     = lipgloss.Color("#34344A")
	ColorBarBg     = lipgloss.Color("#14141F")
	ColorBorder    = lipgloss.Color("#44446A")
	ColorBorderHot = lipgloss.Color("#8888CC")
	ColorRunning   = lipgloss.Color("#33FFA1")
	ColorPaused    = lipgloss.Color("#FFC300")
	ColorError     = lipgloss.Color("#E74C3C")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorText)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorText).
			Padding(0, 1)

	StyleStatusRunning = lipgloss.NewStyle().
				Foreground(ColorRunning).
				Bold(true)

	StyleStatusPaused = lipgloss.NewStyle().
				Foreground(ColorPaused).
				Bold(true)

	StyleStatusError = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder)

	StylePanelActive = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderHot)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StyleRingLabel = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StyleRingDetail = lipgloss.NewStyle().
			Foreground(ColorText)

	StyleSeparator = lipgloss.NewStyle().
			Foreground(ColorFaint)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleCursorLine = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(ColorBorderHot).
			Bold(true)
)
