// Package layout draws the frame every screen is shown in: a header with
// the app name, the screen title and a badge, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/foodverse/foodverse/internal/ui/theme"
)

// MinWidth and MinHeight bound the smallest terminal any screen can be
// drawn in. The visualization has its own, wider threshold.
const (
	MinWidth  = 40
	MinHeight = 16
)

const brand = "🌌 FoodVerse"

// KeyHint is one key and what it does, shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether nothing but the size warning fits.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small!\n\nFoodVerse needs at least %d x %d\n\nCurrent: %d x %d",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(msg))
}

// Frame is the chrome around a screen.
type Frame struct {
	Title string
	Badge string // right-aligned in the header, may be empty
	Hints []KeyHint
}

// Render draws the frame at width x height and fills the space between
// header and footer with body, which is told the size it may use.
func (f Frame) Render(width, height int, body func(width, height int) string) string {
	header := f.header(width)
	footer := f.footer(width)
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := lipgloss.NewStyle().
		Width(width).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(body(width, bodyHeight))
	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

func (f Frame) header(width int) string {
	b := bar(width)
	inner := max(width-b.GetHorizontalFrameSize(), 0)

	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(brand)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(f.Badge)
	room := max(inner-lipgloss.Width(left)-lipgloss.Width(right), 0)
	center := lipgloss.PlaceHorizontal(room, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(f.Title))

	return b.Render(left + center + right)
}

func (f Frame) footer(width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, 0, len(f.Hints))
	for _, h := range f.Hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Description))
	}
	return bar(width).Render(strings.Join(parts, descStyle.Render("  ·  ")))
}
