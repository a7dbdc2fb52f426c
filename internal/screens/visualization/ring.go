package visualization

import (
	"math"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/foodverse/foodverse/internal/dataset"
	"github.com/foodverse/foodverse/internal/layout"
	"github.com/foodverse/foodverse/internal/ui/components"
	"github.com/foodverse/foodverse/internal/ui/theme"
)

// rotationStep is the view rotation applied per key press.
const rotationStep = math.Pi / 16

const (
	maxLabel     = 12
	orbitSamples = 96
)

// view describes how the ring is projected onto a width x height grid. The
// camera sits above the ring plane looking down at an angle, so depth maps
// to rows and height lifts a planet up the screen.
type view struct {
	width, height int
	radius        float64
	rotation      float64
}

// cell is a projected grid position.
type cell struct {
	row, col int
	depth    float64 // larger is nearer the viewer
}

func (v view) project(p layout.Position) cell {
	sin, cos := math.Sincos(v.rotation)
	x := p.X*cos - p.Z*sin
	z := p.X*sin + p.Z*cos

	cx := float64(v.width) / 2
	cy := float64(v.height) / 2
	rx := math.Max(cx-float64(maxLabel)/2-1, 1)
	ry := math.Max(cy*0.55, 1)
	lift := math.Max(cy*0.35, 1)

	r := v.ringRadius()
	return cell{
		row:   clamp(int(math.Round(cy+z/r*ry-p.Y*lift)), 0, v.height-1),
		col:   clamp(int(math.Round(cx+x/r*rx)), 0, v.width-1),
		depth: z,
	}
}

func (v view) ringRadius() float64 {
	if v.radius <= 0 {
		return layout.DefaultRadius
	}
	return v.radius
}

// sprite is a piece of text anchored on the grid.
type sprite struct {
	row, col int
	text     string
	width    int
	depth    float64
}

type planet struct {
	food     dataset.Food
	pos      layout.Position
	selected bool
}

// renderRing draws the star field, the orbit and the food planets. Nearer
// planets win where labels overlap; the selected planet always wins.
func renderRing(v view, planets []planet, frame int) string {
	if v.width <= 0 || v.height <= 0 {
		return ""
	}

	r := v.ringRadius()
	orbit := make(map[[2]int]bool, orbitSamples)
	for i := 0; i < orbitSamples; i++ {
		theta := float64(i) / orbitSamples * 2 * math.Pi
		c := v.project(layout.Position{X: r * math.Cos(theta), Z: r * math.Sin(theta)})
		orbit[[2]int{c.row, c.col}] = true
	}

	var sprites []sprite
	for _, p := range planets {
		c := v.project(p.pos)
		depth := c.depth
		if p.selected {
			depth = math.Inf(1)
		}

		icon := planetIcon(p.food, p.selected)
		iw := lipgloss.Width(icon)
		sprites = append(sprites, sprite{row: c.row, col: c.col - iw/2, text: icon, width: iw, depth: depth})

		if c.row+1 < v.height {
			label := planetLabel(p.food, p.selected)
			lw := lipgloss.Width(label)
			sprites = append(sprites, sprite{row: c.row + 1, col: c.col - lw/2, text: label, width: lw, depth: depth})
		}
	}

	rows := placeSprites(v, sprites)

	orbitStyle := lipgloss.NewStyle().Foreground(theme.Border)
	starStyle := lipgloss.NewStyle().Foreground(theme.Star)

	lines := make([]string, v.height)
	for row := 0; row < v.height; row++ {
		var b strings.Builder
		placed := rows[row]
		next := 0
		for col := 0; col < v.width; {
			if next < len(placed) && placed[next].col == col {
				b.WriteString(placed[next].text)
				col += placed[next].width
				next++
				continue
			}
			switch {
			case orbit[[2]int{row, col}]:
				b.WriteString(orbitStyle.Render("·"))
			case components.StarAt(row, col, frame) != "":
				b.WriteString(starStyle.Render(components.StarAt(row, col, frame)))
			default:
				b.WriteByte(' ')
			}
			col++
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}

// placeSprites resolves overlaps nearest-first and returns the surviving
// sprites of each row ordered by column.
func placeSprites(v view, sprites []sprite) [][]sprite {
	sort.SliceStable(sprites, func(i, j int) bool {
		return sprites[i].depth > sprites[j].depth
	})

	rows := make([][]sprite, v.height)
	for _, s := range sprites {
		if s.row < 0 || s.row >= v.height {
			continue
		}
		s.col = clamp(s.col, 0, max(v.width-s.width, 0))
		if s.col+s.width > v.width {
			continue
		}
		if overlaps(rows[s.row], s) {
			continue
		}
		rows[s.row] = append(rows[s.row], s)
	}
	for _, r := range rows {
		sort.Slice(r, func(i, j int) bool { return r[i].col < r[j].col })
	}
	return rows
}

func overlaps(row []sprite, s sprite) bool {
	for _, o := range row {
		// Neighbours keep at least one blank column between them.
		if s.col <= o.col+o.width && o.col <= s.col+s.width {
			return true
		}
	}
	return false
}

func planetIcon(f dataset.Food, selected bool) string {
	style := lipgloss.NewStyle().Foreground(theme.VerdictColor(f.Verdict))
	if selected {
		return style.Bold(true).Render("❰" + f.Emoji + "❱")
	}
	return style.Render("(" + f.Emoji + ")")
}

func planetLabel(f dataset.Food, selected bool) string {
	name := truncate(f.Name, maxLabel)
	if selected {
		return theme.VerdictStyle(f.Verdict).Underline(true).Render(name)
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(name)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// normalizeRotation keeps a view rotation in [0, 2π).
func normalizeRotation(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
