package visualization

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/foodverse/foodverse/internal/quiz"
	"github.com/foodverse/foodverse/internal/ui/components"
	"github.com/foodverse/foodverse/internal/ui/theme"
)

const celebrationArt = `  ✦ 🎉 ✦ 🎊 ✦ 🎉 ✦
 NUTRITION CHAMPION
  ✦ 🎊 ✦ 🎉 ✦ 🎊 ✦`

func ratingIcon(rating string) string {
	switch rating {
	case "Outstanding!":
		return "🌟"
	case "Great Job!":
		return "👍"
	}
	return "💪"
}

func optionIndex(label string) int {
	for i, o := range quiz.Options() {
		if strings.EqualFold(o, label) {
			return i
		}
	}
	return -1
}

// renderQuestion draws the current question, revealing the judged answer
// when the session says so.
func renderQuestion(q quiz.Snapshot, choice components.MultiChoice, width int) string {
	inner := max(width-6, 20)
	cur := q.Questions[q.CurrentIndex]

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Hint.Render(fmt.Sprintf("Question %d/%d", q.CurrentIndex+1, q.Total())),
		"   ",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(fmt.Sprintf("Score: %d", q.Score)),
	)

	progress := components.Meter{Count: q.CurrentIndex + 1, Total: q.Total(), Width: inner, Color: theme.Accent}

	if q.Revealed {
		choice = choice.Reveal(optionIndex(q.SelectedAnswer), optionIndex(cur.Correct.Label()))
	}

	sections := []string{
		header,
		progress.View(),
		"",
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, cur.Food.Emoji),
		"",
		choice.View(),
	}

	if q.Revealed {
		sections = append(sections, renderResult(q, inner))
	} else {
		sections = append(sections, theme.Hint.Render("1-3 or ↑↓ + enter to answer · esc to leave"))
	}

	return theme.Overlay.Width(width).Render(strings.Join(sections, "\n"))
}

func renderResult(q quiz.Snapshot, width int) string {
	cur := q.Questions[q.CurrentIndex]
	style := theme.Incorrect
	msg := "❌ Not quite. "
	if q.LastAnswerCorrect() {
		style = theme.Correct
		msg = "✅ Correct! "
	}
	return lipgloss.NewStyle().Width(width).Render(style.Render(msg) + theme.Body.Render(cur.Food.Reason))
}

// renderComplete draws the final score card.
func renderComplete(q quiz.Snapshot, width int) string {
	inner := max(width-6, 20)

	var sections []string
	if q.BonusEligible {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).Render(celebrationArt), "")
	}

	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Gold).Render("🏆"),
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Quiz Complete!"),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(fmt.Sprintf("%d/%d", q.Score, q.Total())),
		lipgloss.NewStyle().Foreground(theme.Primary).Render(ratingIcon(q.Rating())+" "+q.Rating()),
		"",
	)

	for i, a := range q.Answers {
		if i >= len(q.Questions) {
			break
		}
		f := q.Questions[i].Food
		mark := theme.Correct.Render("✓")
		if !a.Correct {
			mark = theme.Incorrect.Render("✗")
		}
		line := fmt.Sprintf("%s %s %s  %s", mark, f.Emoji, f.Name,
			theme.VerdictStyle(f.Verdict).Render(f.Verdict.Label()))
		sections = append(sections, line)
	}

	sections = append(sections, "",
		components.PillButton("Back to FoodVerse", true, inner-4),
		theme.Hint.Render("enter to return · r to retake"),
	)

	return theme.Overlay.
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(sections, "\n"))
}
