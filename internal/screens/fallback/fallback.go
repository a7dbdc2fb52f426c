// Package fallback is shown instead of the visualization when the terminal
// is too narrow for the food ring.
package fallback

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/foodverse/foodverse/internal/screen"
	"github.com/foodverse/foodverse/internal/ui/layout"
	"github.com/foodverse/foodverse/internal/ui/theme"
)

// FallbackScreen asks the learner for a wider terminal.
type FallbackScreen struct {
	minColumns int
}

var (
	_ screen.Screen          = (*FallbackScreen)(nil)
	_ screen.KeyHintProvider = (*FallbackScreen)(nil)
)

// New creates a fallback that asks for at least minColumns columns.
func New(minColumns int) *FallbackScreen {
	return &FallbackScreen{minColumns: minColumns}
}

func (f *FallbackScreen) Init() tea.Cmd { return nil }

func (f *FallbackScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return f, nil }

func (f *FallbackScreen) Title() string { return "" }

func (f *FallbackScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Change Disease"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (f *FallbackScreen) View(width, height int) string {
	lines := []string{
		"🖥️",
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("FoodVerse is best experienced on a wider screen"),
		"",
		theme.Subtitle.Render("The cosmic food ring needs room to orbit."),
		theme.Subtitle.Render(fmt.Sprintf("Widen your terminal to at least %d columns (now %d).", f.minColumns, width)),
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
}
