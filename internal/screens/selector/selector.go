// Package selector is the disease selection screen.
package selector

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/foodverse/foodverse/internal/dataset"
	"github.com/foodverse/foodverse/internal/nav"
	"github.com/foodverse/foodverse/internal/router"
	"github.com/foodverse/foodverse/internal/screen"
	"github.com/foodverse/foodverse/internal/ui/components"
	"github.com/foodverse/foodverse/internal/ui/layout"
	"github.com/foodverse/foodverse/internal/ui/theme"
)

// SelectorScreen lists the diseases in dataset order.
type SelectorScreen struct {
	diseases []dataset.Disease
	menu     components.Menu
	flash    string
}

var (
	_ screen.Screen          = (*SelectorScreen)(nil)
	_ screen.KeyHintProvider = (*SelectorScreen)(nil)
)

// New creates a selector over the machine's dataset.
func New(m *nav.Machine) *SelectorScreen {
	diseases := m.Store().Diseases()

	items := make([]components.MenuItem, 0, len(diseases))
	for _, d := range diseases {
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%s  %s", d.Icon, d.Name),
			Hint:  d.Description,
			Color: lipgloss.Color(d.Color),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.SelectDiseaseMsg{DiseaseID: d.ID}
				}
			},
		})
	}

	return &SelectorScreen{
		diseases: diseases,
		menu:     components.NewMenu(items),
	}
}

func (s *SelectorScreen) Init() tea.Cmd {
	return nil
}

func (s *SelectorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case router.ErrorMsg:
		s.flash = flashFor(msg.Err)
		return s, nil
	case tea.KeyPressMsg:
		s.flash = ""
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func flashFor(err error) string {
	switch {
	case errors.Is(err, nav.ErrUnsupportedViewport):
		return "📱 FoodVerse is best experienced on a wider screen. Resize and try again."
	case errors.Is(err, dataset.ErrInvalidDiseaseID):
		return "That condition is not in the FoodVerse."
	}
	return err.Error()
}

// Selected returns the highlighted disease.
func (s *SelectorScreen) Selected() (dataset.Disease, bool) {
	if s.menu.Selected < 0 || s.menu.Selected >= len(s.diseases) {
		return dataset.Disease{}, false
	}
	return s.diseases[s.menu.Selected], true
}

func (s *SelectorScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string

	heading := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Choose Your ") +
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Health Quest")
	sections = append(sections, heading)
	sections = append(sections, theme.Subtitle.Render("Select a condition to explore foods in the FoodVerse"))

	menu := lipgloss.NewStyle().Width(cw).Render(s.menu.View())
	sections = append(sections, "", menu)

	if d, ok := s.Selected(); ok {
		sections = append(sections, renderBreakdown(d, cw))
	}

	if s.flash != "" {
		sections = append(sections, "", theme.Incorrect.Render(s.flash))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderBreakdown shows how the disease's foods split across verdicts.
func renderBreakdown(d dataset.Disease, cw int) string {
	counts := d.VerdictCounts()
	total := len(d.Foods)

	lines := []string{theme.Hint.Render(fmt.Sprintf("%d foods to explore", total))}
	for _, v := range dataset.AllVerdicts() {
		bar := components.Meter{
			Label:     fmt.Sprintf("%-8s", v.Label()),
			Count:     counts[v],
			Total:     total,
			Width:     cw - 8,
			Color:     theme.VerdictColor(v),
			ShowCount: true,
		}
		lines = append(lines, bar.View())
	}

	return components.Card(strings.Join(lines, "\n"), cw, lipgloss.Color(d.Color))
}

func (s *SelectorScreen) Title() string {
	return "Choose Your Health Quest"
}

func (s *SelectorScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Explore"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
