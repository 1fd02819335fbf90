package tui

import "github.com/charmbracelet/lipgloss"

// Color palette — mirrors the chart's house colors.
var (
	ColorBar      = lipgloss.Color("#4A90E2")
	ColorBarDim   = lipgloss.Color("#357ABD")
	ColorGreen    = lipgloss.Color("#27AE60")
	ColorRed      = lipgloss.Color("#E74C3C")
	ColorYellow   = lipgloss.Color("#E5C07B")
	ColorPurple   = lipgloss.Color("#9B59B6")
	ColorGray     = lipgloss.Color("#626262")
	ColorOffWhite = lipgloss.Color("#D0D0D0")
	ColorWhite    = lipgloss.Color("#FFFFFF")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			Background(ColorBarDim).
			Padding(0, 1)

	WindowStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	TaskNameStyle = lipgloss.NewStyle().
			Foreground(ColorOffWhite)

	SelectedNameStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorWhite)

	BarStyle = lipgloss.NewStyle().
			Foreground(ColorBar)

	SelectedBarStyle = lipgloss.NewStyle().
				Foreground(ColorWhite)

	DateStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorGray)
)
