package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/foodverse/foodverse/internal/dataset"
)

// Color palette: deep space with purple and blue nebula accents.
var (
	Primary   = lipgloss.Color("#8B5CF6") // Violet
	Secondary = lipgloss.Color("#3B82F6") // Blue
	Accent    = lipgloss.Color("#F472B6") // Pink
	Gold      = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#05010D") // Space
	BgCard    = lipgloss.Color("#1E1B4B") // Indigo night
	Border    = lipgloss.Color("#4C1D95") // Deep purple
	Star      = lipgloss.Color("#475569") // Faint star
)

// Verdict colours, matching the planet materials.
var (
	Safe     = lipgloss.Color("#22C55E")
	Moderate = lipgloss.Color("#EAB308")
	Avoid    = lipgloss.Color("#EF4444")
)

// VerdictColor returns the colour for v.
func VerdictColor(v dataset.Verdict) color.Color {
	switch v {
	case dataset.VerdictSafe:
		return Safe
	case dataset.VerdictModerate:
		return Moderate
	case dataset.VerdictAvoid:
		return Avoid
	}
	return TextDim
}

// VerdictStyle returns a bold style in the colour of v.
func VerdictStyle(v dataset.Verdict) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(VerdictColor(v)).Bold(true)
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Overlay = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
