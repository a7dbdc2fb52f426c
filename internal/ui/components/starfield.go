package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/foodverse/foodverse/internal/ui/theme"
)

// starDensity is one star per this many cells on average.
const starDensity = 23

var starGlyphs = []string{"·", "·", "∙", "✦", "⋆"}

// StarAt returns the star glyph drawn at a cell, or "" for empty space. The
// pattern is stable for a given cell; frame only makes some stars twinkle.
func StarAt(row, col, frame int) string {
	h := hashCell(row, col)
	if h%starDensity != 0 {
		return ""
	}
	g := starGlyphs[(h/starDensity)%uint32(len(starGlyphs))]
	if frame > 0 && (h/7+uint32(frame))%5 == 0 {
		return "✧"
	}
	return g
}

// StarRow renders one row of the star field in the faint star colour.
func StarRow(row, width, frame int) string {
	style := lipgloss.NewStyle().Foreground(theme.Star)
	var b strings.Builder
	for col := 0; col < width; col++ {
		if s := StarAt(row, col, frame); s != "" {
			b.WriteString(style.Render(s))
			continue
		}
		b.WriteByte(' ')
	}
	return b.String()
}

func hashCell(row, col int) uint32 {
	h := uint32(row)*73856093 ^ uint32(col)*19349663
	h ^= h >> 13
	h *= 0x5bd1e995
	h ^= h >> 15
	return h
}
