package visualization

import (
	"charm.land/bubbles/v2/key"

	"github.com/foodverse/foodverse/internal/ui/layout"
)

type keyMap struct {
	Prev        key.Binding
	Next        key.Binding
	RotateLeft  key.Binding
	RotateRight key.Binding
	Open        key.Binding
	Quiz        key.Binding
	Back        key.Binding
	Help        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "up", "k"),
			key.WithHelp("←/h", "previous food"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "down", "j", "tab"),
			key.WithHelp("→/l", "next food"),
		),
		RotateLeft: key.NewBinding(
			key.WithKeys("[", ","),
			key.WithHelp("[", "rotate left"),
		),
		RotateRight: key.NewBinding(
			key.WithKeys("]", "."),
			key.WithHelp("]", "rotate right"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("enter", "learn more"),
		),
		Quiz: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "take the quiz"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "change disease"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Open, k.Quiz, k.Back, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.RotateLeft, k.RotateRight},
		{k.Open, k.Quiz},
		{k.Back, k.Help},
	}
}

// hints converts bindings to footer hints.
func hints(bindings ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return out
}
