package router

import (
	"github.com/foodverse/foodverse/internal/quiz"
)

// Navigation requests. Screens return these as commands; the router applies
// them to the navigation machine.
type (
	// EnterMsg leaves the landing screen.
	EnterMsg struct{}

	// SelectDiseaseMsg opens the visualization for a disease.
	SelectDiseaseMsg struct{ DiseaseID string }

	// BackMsg returns to the disease selector.
	BackMsg struct{}

	OpenDetailMsg  struct{ FoodID string }
	CloseDetailMsg struct{}
	OpenQuizMsg    struct{}
	CloseQuizMsg   struct{}

	// SubmitAnswerMsg answers the current quiz question.
	SubmitAnswerMsg struct{ Option string }

	// QuizAdvanceMsg fires when a scheduled quiz advance is due.
	QuizAdvanceMsg struct{ Advance quiz.Advance }
)

// ErrorMsg is delivered to the active screen when a request it sent was
// rejected.
type ErrorMsg struct {
	Err error
}
