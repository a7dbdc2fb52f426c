package visualization

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/patrickmn/go-cache"

	"github.com/foodverse/foodverse/internal/dataset"
	"github.com/foodverse/foodverse/internal/ui/theme"
)

const hippocrates = `"Let food be thy medicine and medicine be thy food" — Hippocrates`

// detailCache holds rendered detail bodies keyed by disease, food and width.
var detailCache = cache.New(10*time.Minute, 15*time.Minute)

func verdictIcon(v dataset.Verdict) string {
	switch v {
	case dataset.VerdictSafe:
		return "✅"
	case dataset.VerdictModerate:
		return "⚠️"
	case dataset.VerdictAvoid:
		return "❌"
	}
	return "•"
}

// detailMarkdown is the overlay body before rendering.
func detailMarkdown(f dataset.Food) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Why?\n\n%s\n\n", f.Reason)
	fmt.Fprintf(&b, "## Nutritional Info\n\n%s\n\n", f.NutritionalInfo)
	fmt.Fprintf(&b, "> %s\n", hippocrates)
	return b.String()
}

// renderDetailBody renders the markdown body wrapped at width, falling back
// to the raw markdown if the renderer fails.
func renderDetailBody(diseaseID string, f dataset.Food, width int) string {
	k := fmt.Sprintf("%s/%s/%d", diseaseID, f.ID, width)
	if v, ok := detailCache.Get(k); ok {
		return v.(string)
	}

	md := detailMarkdown(f)
	out := md
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if rendered, err := r.Render(md); err == nil {
			out = strings.Trim(rendered, "\n")
		}
	}

	detailCache.Set(k, out, cache.DefaultExpiration)
	return out
}

// renderDetail draws the detail overlay card for f.
func renderDetail(diseaseID string, f dataset.Food, width int) string {
	inner := max(width-6, 20)

	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(f.Emoji + "  " + f.Name)
	verdict := theme.VerdictStyle(f.Verdict).
		Render(verdictIcon(f.Verdict) + " " + f.Verdict.Headline())

	body := renderDetailBody(diseaseID, f, inner)
	hint := theme.Hint.Render("esc to close")

	content := lipgloss.JoinVertical(lipgloss.Left, title, verdict, "", body, "", hint)
	return theme.Overlay.
		BorderForeground(theme.VerdictColor(f.Verdict)).
		Width(width).
		Render(content)
}
