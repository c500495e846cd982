package main

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorGrab    = colorPeach
)

// ---------------------------------------------------------------------------
// Shared styles
// ---------------------------------------------------------------------------

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	statusStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError)
	footerStyle = lipgloss.NewStyle().Foreground(colorOverlay1)

	columnTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	columnBorder     = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorSurface1).
				Padding(0, 1)
	columnTargetBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorFocus).
				Padding(0, 1)

	cardStyle       = lipgloss.NewStyle().Foreground(colorText)
	cardCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	cardGrabStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorGrab)
	cardTargetStyle = lipgloss.NewStyle().Foreground(colorBase).Background(colorFocus)
	dropLineStyle   = lipgloss.NewStyle().Foreground(colorFocus)

	jumpTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorMauve)
	jumpMatchStyle = lipgloss.NewStyle().Foreground(colorText)
	jumpCursorLine = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
)
