package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"emotetop/internal/emotes"
)

// ─── Color Palette (Catppuccin Mocha) ────────────────────────────────────────

var (
	colorMantle   = lipgloss.Color("#181825")
	colorSurface0 = lipgloss.Color("#313244")
	colorSurface1 = lipgloss.Color("#45475A")
	colorText     = lipgloss.Color("#CDD6F4")
	colorSubtext  = lipgloss.Color("#A6ADC8")
	colorDim      = lipgloss.Color("#585B70")

	colorAccent   = lipgloss.Color("#CBA6F7") // mauve – primary accent
	colorBlue     = lipgloss.Color("#89B4FA")
	colorSapphire = lipgloss.Color("#74C7EC")
	colorGreen    = lipgloss.Color("#A6E3A1")
	colorYellow   = lipgloss.Color("#F9E2AF")
	colorRed      = lipgloss.Color("#F38BA8")
	colorPeach    = lipgloss.Color("#FAB387")
	colorLavender = lipgloss.Color("#B4BEFE")
)

// ─── Reusable Styles ─────────────────────────────────────────────────────────

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorLavender)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorSubtext)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	rankStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPeach)

	rowSelectedStyle = lipgloss.NewStyle().
				Background(colorSurface0)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 2)

	dialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue)

	presetCursorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorMantle).
				Background(colorAccent).
				Padding(0, 1)

	presetStyle = lipgloss.NewStyle().
			Foreground(colorSubtext).
			Padding(0, 1)

	toggleOnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGreen)

	toggleOffStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	inputValidStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	inputInvalidStyle = lipgloss.NewStyle().
				Foreground(colorRed)
)

// providerColorMap assigns an accent color to each provider.
var providerColorMap = map[emotes.Provider]lipgloss.Color{
	emotes.ProviderTwitch:  colorAccent,
	emotes.ProviderBTTV:    colorRed,
	emotes.ProviderFFZ:     colorPeach,
	emotes.ProviderSevenTV: colorSapphire,
}

// ProviderColor returns the accent color for a provider.
func ProviderColor(p emotes.Provider) lipgloss.Color {
	if c, ok := providerColorMap[p]; ok {
		return c
	}
	return colorSubtext
}

// ProviderBadge renders a short colored provider tag.
func ProviderBadge(p emotes.Provider) string {
	return lipgloss.NewStyle().Bold(true).Foreground(ProviderColor(p)).Render(string(p))
}

// RenderUsageBar draws a usage bar scaled against the page maximum.
func RenderUsageBar(count, max int64, w int) string {
	if w < 4 {
		w = 4
	}
	if max <= 0 {
		max = 1
	}
	filled := int(float64(count) / float64(max) * float64(w))
	if filled < 1 && count > 0 {
		filled = 1
	}
	if filled > w {
		filled = w
	}

	bar := lipgloss.NewStyle().Foreground(colorGreen).Render(strings.Repeat("█", filled))
	track := lipgloss.NewStyle().Foreground(colorSurface1).Render(strings.Repeat("░", w-filled))
	return bar + track
}
