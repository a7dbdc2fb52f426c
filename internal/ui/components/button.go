package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/foodverse/foodverse/internal/ui/theme"
)

// Button is a call-to-action button pressed with enter or space.
type Button struct {
	Label   string
	Active  bool
	OnPress func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Active:  active,
		OnPress: onPress,
	}
}

// Update handles key events.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active || b.OnPress == nil {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "space", " ":
			return b, b.OnPress()
		}
	}

	return b, nil
}

// View renders the button centred in width columns.
func (b Button) View(width int) string {
	label := "  🚀 " + b.Label + "  "
	style := theme.ButtonInactive
	if b.Active {
		style = theme.ButtonActive
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(label))
}
