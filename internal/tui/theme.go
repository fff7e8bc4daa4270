package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// indigo has no Mocha equivalent; Lavender is the closest hue.
const (
	colorIndigo = colorLavender
	colorBrand  = colorMauve
	colorFocus  = colorBlue
	colorMuted  = colorSubtext0
	colorBorder = colorSurface2
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorBrand).
			Bold(true).
			Padding(0, 1)
	pillStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface1).
			Padding(0, 1)
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	warnCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorYellow).
			Foreground(colorYellow).
			Padding(0, 1)
	buttonStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorFocus).
			Bold(true).
			Padding(0, 1)

	titleStyle       = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	subtitleStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	labelStyle       = lipgloss.NewStyle().Foreground(colorOverlay1)
	textStyle        = lipgloss.NewStyle().Foreground(colorText)
	tabActiveStyle   = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	selectedBarStyle = lipgloss.NewStyle().Foreground(colorFocus)
	dividerStyle     = lipgloss.NewStyle().Foreground(colorBorder)
	barFilledStyle   = lipgloss.NewStyle().Foreground(colorFocus)
	barEmptyStyle    = lipgloss.NewStyle().Foreground(colorSurface1)
	statusStyle      = lipgloss.NewStyle().Foreground(colorMuted)
	placeholderStyle = lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
)
