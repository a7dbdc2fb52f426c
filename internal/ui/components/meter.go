package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/foodverse/foodverse/internal/ui/theme"
)

// Meter is a horizontal bar filled to Count out of Total.
type Meter struct {
	Label     string
	Count     int
	Total     int
	Width     int
	Color     color.Color // theme.Secondary when nil
	ShowCount bool        // append the count after the bar
}

// Fraction returns Count/Total clamped to [0, 1]. An empty meter is 0.
func (m Meter) Fraction() float64 {
	if m.Total <= 0 {
		return 0
	}
	return min(max(float64(m.Count)/float64(m.Total), 0), 1)
}

func (m Meter) View() string {
	var b strings.Builder
	if m.Label != "" {
		b.WriteString(theme.Body.Render(m.Label))
		b.WriteString(" ")
	}

	suffix := ""
	if m.ShowCount {
		suffix = fmt.Sprintf(" %d", m.Count)
	}

	barWidth := max(m.Width-lipgloss.Width(b.String())-len(suffix), 4)
	filled := int(float64(barWidth) * m.Fraction())

	fill := m.Color
	if fill == nil {
		fill = theme.Secondary
	}
	b.WriteString(lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat("█", filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", barWidth-filled)))
	if suffix != "" {
		b.WriteString(theme.Hint.Render(suffix))
	}
	return b.String()
}
