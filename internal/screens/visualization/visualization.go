// Package visualization shows the selected disease's foods as planets on a
// ring, with the food detail and quiz overlays on top.
package visualization

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/foodverse/foodverse/internal/dataset"
	"github.com/foodverse/foodverse/internal/nav"
	"github.com/foodverse/foodverse/internal/quiz"
	"github.com/foodverse/foodverse/internal/router"
	"github.com/foodverse/foodverse/internal/screen"
	"github.com/foodverse/foodverse/internal/ui/components"
	"github.com/foodverse/foodverse/internal/ui/layout"
	"github.com/foodverse/foodverse/internal/ui/theme"
)

// VisualizationScreen renders the food ring for the machine's selected
// disease. The navigation machine owns all state that matters; the screen
// keeps only presentation state such as the highlighted planet and the view
// rotation.
type VisualizationScreen struct {
	machine *nav.Machine
	disease dataset.Disease
	radius  float64

	keys     keyMap
	help     help.Model
	selected int
	rotation float64
	flash    string

	// choice tracks the answer cursor for one question of one session.
	choice    components.MultiChoice
	choiceKey string
}

var (
	_ screen.Screen          = (*VisualizationScreen)(nil)
	_ screen.KeyHintProvider = (*VisualizationScreen)(nil)
	_ screen.BadgeProvider   = (*VisualizationScreen)(nil)
)

// New creates the visualization for the machine's current disease, drawn
// at the radius the machine laid it out with.
func New(m *nav.Machine) *VisualizationScreen {
	d, _ := m.Disease()
	return &VisualizationScreen{
		machine: m,
		disease: d,
		radius:  m.RingRadius(),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

func (s *VisualizationScreen) Init() tea.Cmd {
	return nil
}

func (s *VisualizationScreen) Title() string {
	return s.disease.Icon + " " + s.disease.Name
}

// Badge implements screen.BadgeProvider.
func (s *VisualizationScreen) Badge() string {
	return fmt.Sprintf("%d foods to explore", len(s.disease.Foods))
}

// Selected returns the highlighted food.
func (s *VisualizationScreen) Selected() (dataset.Food, bool) {
	if s.selected < 0 || s.selected >= len(s.disease.Foods) {
		return dataset.Food{}, false
	}
	return s.disease.Foods[s.selected], true
}

func (s *VisualizationScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case router.ErrorMsg:
		s.flash = msg.Err.Error()
		return s, nil
	case tea.KeyPressMsg:
		s.flash = ""
		st := s.machine.State()
		if st.QuizActive {
			return s, s.updateQuiz(msg)
		}
		if st.DetailFoodID != "" {
			return s, s.updateDetail(msg)
		}
		return s, s.updateRing(msg)
	}
	return s, nil
}

func (s *VisualizationScreen) updateRing(msg tea.KeyPressMsg) tea.Cmd {
	n := len(s.disease.Foods)
	switch {
	case key.Matches(msg, s.keys.Prev):
		if n > 0 {
			s.selected = (s.selected - 1 + n) % n
		}
	case key.Matches(msg, s.keys.Next):
		if n > 0 {
			s.selected = (s.selected + 1) % n
		}
	case key.Matches(msg, s.keys.RotateLeft):
		s.rotation = normalizeRotation(s.rotation - rotationStep)
	case key.Matches(msg, s.keys.RotateRight):
		s.rotation = normalizeRotation(s.rotation + rotationStep)
	case key.Matches(msg, s.keys.Open):
		if f, ok := s.Selected(); ok {
			return send(router.OpenDetailMsg{FoodID: f.ID})
		}
	case key.Matches(msg, s.keys.Quiz):
		return send(router.OpenQuizMsg{})
	case key.Matches(msg, s.keys.Back):
		return send(router.BackMsg{})
	case key.Matches(msg, s.keys.Help):
		s.help.ShowAll = !s.help.ShowAll
	}
	return nil
}

func (s *VisualizationScreen) updateDetail(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Back), key.Matches(msg, s.keys.Open):
		return send(router.CloseDetailMsg{})
	case key.Matches(msg, s.keys.Quiz):
		return send(router.OpenQuizMsg{})
	}
	return nil
}

func (s *VisualizationScreen) updateQuiz(msg tea.KeyPressMsg) tea.Cmd {
	if key.Matches(msg, s.keys.Back) {
		return send(router.CloseQuizMsg{})
	}

	q, ok := s.machine.Quiz()
	if !ok {
		return nil
	}
	if q.Complete {
		switch msg.String() {
		case "enter", "space":
			return send(router.CloseQuizMsg{})
		case "r":
			return send(router.OpenQuizMsg{})
		}
		return nil
	}
	if q.Revealed {
		return nil
	}

	choice := s.choiceFor(q)
	choice, _ = choice.Update(msg)
	if opt, ok := choice.Chosen(); ok {
		// The session judges the answer; the cursor is reset for the
		// next question.
		s.choiceKey = ""
		return send(router.SubmitAnswerMsg{Option: opt})
	}
	s.choice = choice
	return nil
}

// choiceFor returns the answer cursor for the current question, starting a
// fresh one whenever the session or the question changes.
func (s *VisualizationScreen) choiceFor(q quiz.Snapshot) components.MultiChoice {
	k := fmt.Sprintf("%s/%d", q.ID, q.CurrentIndex)
	if s.choiceKey != k {
		cur := q.Questions[q.CurrentIndex]
		s.choice = components.NewMultiChoice(cur.Prompt, quiz.Options())
		s.choice.Colors = []color.Color{theme.Safe, theme.Moderate, theme.Avoid}
		s.choiceKey = k
	}
	return s.choice
}

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (s *VisualizationScreen) KeyHints() []layout.KeyHint {
	st := s.machine.State()
	switch {
	case st.QuizActive:
		return []layout.KeyHint{
			{Key: "1-3", Description: "Answer"},
			{Key: "esc", Description: "Leave quiz"},
		}
	case st.DetailFoodID != "":
		return hints(s.keys.Back, s.keys.Quiz)
	}
	return hints(s.keys.ShortHelp()...)
}

func (s *VisualizationScreen) View(width, height int) string {
	st := s.machine.State()

	top := s.renderTop(width)
	bottom := s.renderBottom(width)
	canvasHeight := max(height-lipgloss.Height(top)-lipgloss.Height(bottom), 3)

	var middle string
	switch {
	case st.QuizActive:
		middle = s.renderQuizOverlay(width, canvasHeight)
	case st.DetailFoodID != "":
		middle = s.renderDetailOverlay(st.DetailFoodID, width, canvasHeight)
	default:
		middle = s.renderCanvas(width, canvasHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, top, middle, bottom)
}

func (s *VisualizationScreen) renderTop(width int) string {
	left := lipgloss.NewStyle().Foreground(lipgloss.Color(s.disease.Color)).Bold(true).
		Render(s.disease.Icon + " " + s.disease.Name)
	right := theme.Hint.Render("← Change Disease (esc)")
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	line := " " + left + strings.Repeat(" ", gap) + right

	instructions := theme.Subtitle.Width(width).
		Render("🪐 Select planets to learn more • [ ] to rotate • q for the quiz")
	return line + "\n" + instructions
}

func (s *VisualizationScreen) renderBottom(width int) string {
	var legend []string
	for _, v := range dataset.AllVerdicts() {
		legend = append(legend, theme.VerdictStyle(v).Render("●")+" "+theme.Body.Render(v.Label()))
	}
	line := " " + theme.Hint.Render("Health Verdict  ") + strings.Join(legend, "   ")

	if f, ok := s.Selected(); ok && !s.machine.State().QuizActive {
		line += "   " + theme.Hint.Render("▸ ") + theme.VerdictStyle(f.Verdict).Render(f.Name)
	}

	out := line
	if s.help.ShowAll {
		s.help.SetWidth(width - 2)
		out += "\n " + s.help.View(s.keys)
	}
	if s.flash != "" {
		out += "\n " + theme.Incorrect.Render(s.flash)
	}
	return out
}

func (s *VisualizationScreen) renderCanvas(width, height int) string {
	positions := s.machine.Positions()
	planets := make([]planet, 0, len(positions))
	for i, p := range positions {
		if i >= len(s.disease.Foods) {
			break
		}
		planets = append(planets, planet{food: s.disease.Foods[i], pos: p, selected: i == s.selected})
	}
	v := view{width: width, height: height, radius: s.radius, rotation: s.rotation}
	return renderRing(v, planets, 0)
}

func (s *VisualizationScreen) renderDetailOverlay(foodID string, width, height int) string {
	f, ok := s.machine.DetailFood()
	if !ok || f.ID != foodID {
		return s.renderCanvas(width, height)
	}
	card := renderDetail(s.disease.ID, f, min(components.ContentWidth(width)+6, width))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *VisualizationScreen) renderQuizOverlay(width, height int) string {
	q, ok := s.machine.Quiz()
	if !ok {
		return s.renderCanvas(width, height)
	}
	w := min(components.ContentWidth(width)+6, width)

	var card string
	switch {
	case q.Complete:
		card = renderComplete(q, w)
	default:
		card = renderQuestion(q, s.choiceFor(q), w)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
