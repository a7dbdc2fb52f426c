package components

import (
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/foodverse/foodverse/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Hint     string
	Color    color.Color // optional accent for the selected row
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// View renders the menu. The selected item's hint is shown beneath it.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		if i != m.Selected {
			fg := theme.Text
			if item.Disabled {
				fg = theme.TextDim
			}
			b.WriteString(lipgloss.NewStyle().Foreground(fg).Render("    "+item.Label) + "\n")
			continue
		}

		accent := item.Color
		if accent == nil {
			accent = theme.Primary
		}
		b.WriteString(lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Render("  ▸ "+item.Label) + "\n")
		if item.Hint != "" {
			b.WriteString(theme.Hint.Render("      "+item.Hint) + "\n")
		}
	}
	return b.String()
}
