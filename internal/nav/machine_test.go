package nav

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodverse/foodverse/internal/dataset"
	"github.com/foodverse/foodverse/internal/layout"
	"github.com/foodverse/foodverse/internal/quiz"
)

func newMachine(t *testing.T, opts ...Option) *Machine {
	t.Helper()
	store, err := dataset.Default()
	require.NoError(t, err)
	return New(store, opts...)
}

func visualizing(t *testing.T, diseaseID string, opts ...Option) *Machine {
	t.Helper()
	m := newMachine(t, opts...)
	require.NoError(t, m.Enter())
	require.NoError(t, m.SelectDisease(diseaseID))
	return m
}

func TestNew_StartsOnLanding(t *testing.T) {
	m := newMachine(t)
	assert.Equal(t, State{ActiveScreen: ScreenLanding}, m.State())
	assert.Zero(t, m.Transitions())
	assert.Empty(t, m.Positions())
	assert.False(t, m.Unsupported())
}

func TestEnter(t *testing.T) {
	m := newMachine(t)
	require.NoError(t, m.Enter())
	assert.Equal(t, State{ActiveScreen: ScreenSelector}, m.State())
	assert.Equal(t, uint64(1), m.Transitions())

	err := m.Enter()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, ScreenSelector, m.State().ActiveScreen)
}

func TestSelectDisease(t *testing.T) {
	m := newMachine(t)
	require.NoError(t, m.Enter())
	require.NoError(t, m.SelectDisease("diabetes"))

	st := m.State()
	assert.Equal(t, ScreenVisualization, st.ActiveScreen)
	assert.Equal(t, "diabetes", st.SelectedDiseaseID)
	assert.Empty(t, st.DetailFoodID)
	assert.False(t, st.QuizActive)

	positions := m.Positions()
	require.Len(t, positions, 8)
	for i, p := range positions {
		assert.InDelta(t, layout.DefaultRadius, p.HorizontalRadius(), 1e-9, "position %d", i)
		assert.InDelta(t, float64(i)*2*math.Pi/8, p.Angle(), 1e-9, "position %d", i)
		assert.GreaterOrEqual(t, p.Y, -1.0)
		assert.Less(t, p.Y, 1.0)
	}

	d, ok := m.Disease()
	require.True(t, ok)
	assert.Equal(t, "Diabetes", d.Name)
}

func TestSelectDisease_Unknown(t *testing.T) {
	m := newMachine(t)
	require.NoError(t, m.Enter())

	err := m.SelectDisease("scurvy")
	assert.ErrorIs(t, err, dataset.ErrInvalidDiseaseID)

	var te *TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, ScreenSelector, te.From)
	assert.Equal(t, State{ActiveScreen: ScreenSelector}, m.State())
}

func TestSelectDisease_WrongScreen(t *testing.T) {
	m := newMachine(t)
	assert.ErrorIs(t, m.SelectDisease("diabetes"), ErrInvalidTransition)
	assert.Equal(t, ScreenLanding, m.State().ActiveScreen)
}

func TestBackToSelector_RestoresPostEnterState(t *testing.T) {
	for _, id := range []string{"diabetes", "hypertension", "thyroid", "obesity"} {
		t.Run(id, func(t *testing.T) {
			m := newMachine(t)
			require.NoError(t, m.Enter())
			afterEnter := m.State()

			require.NoError(t, m.SelectDisease(id))
			require.NoError(t, m.BackToSelector())
			assert.Equal(t, afterEnter, m.State())
			assert.Empty(t, m.Positions())
		})
	}
}

func TestBackToSelector_ClearsOverlays(t *testing.T) {
	m := visualizing(t, "thyroid")
	require.NoError(t, m.OpenDetail("th2"))
	require.NoError(t, m.OpenQuiz())
	_, err := m.SubmitAnswer("safe")
	require.NoError(t, err)

	require.NoError(t, m.BackToSelector())
	assert.Equal(t, State{ActiveScreen: ScreenSelector}, m.State())
	_, ok := m.Quiz()
	assert.False(t, ok)
}

func TestBackToSelector_OnSelectorIsNoop(t *testing.T) {
	m := newMachine(t)
	require.NoError(t, m.Enter())
	before := m.Transitions()

	require.NoError(t, m.BackToSelector())
	assert.Equal(t, before, m.Transitions())
	assert.Equal(t, State{ActiveScreen: ScreenSelector}, m.State())
}

func TestBackToSelector_FromLanding(t *testing.T) {
	m := newMachine(t)
	assert.ErrorIs(t, m.BackToSelector(), ErrInvalidTransition)
}

func TestLayoutRecomputedOnEachEntry(t *testing.T) {
	calls := 0
	engine := &layout.Engine{Radius: layout.DefaultRadius, Source: layout.SourceFunc(func() float64 {
		calls++
		return 0.5
	})}
	m := visualizing(t, "obesity", WithLayout(engine))
	assert.Equal(t, 8, calls)

	require.NoError(t, m.BackToSelector())
	require.NoError(t, m.SelectDisease("obesity"))
	assert.Equal(t, 16, calls)
	assert.Equal(t, uint64(4), m.Transitions())
}

func TestRingRadius(t *testing.T) {
	m := newMachine(t, WithLayout(&layout.Engine{Radius: 3}))
	assert.Equal(t, 3.0, m.RingRadius())

	// A zero radius falls back to the default for both layout and drawing.
	m = visualizing(t, "diabetes", WithLayout(&layout.Engine{Radius: 0, Source: layout.SourceFunc(func() float64 { return 0.5 })}))
	assert.Equal(t, layout.DefaultRadius, m.RingRadius())
	for _, p := range m.Positions() {
		assert.InDelta(t, layout.DefaultRadius, p.HorizontalRadius(), 1e-9)
	}
}

func TestDetailOverlay(t *testing.T) {
	m := visualizing(t, "diabetes")

	require.NoError(t, m.OpenDetail("db5"))
	f, ok := m.DetailFood()
	require.True(t, ok)
	assert.Equal(t, dataset.VerdictAvoid, f.Verdict)

	// Opening another food replaces the first.
	require.NoError(t, m.OpenDetail("db1"))
	assert.Equal(t, "db1", m.State().DetailFoodID)

	require.NoError(t, m.CloseDetail())
	assert.Empty(t, m.State().DetailFoodID)
	_, ok = m.DetailFood()
	assert.False(t, ok)
}

func TestOpenDetail_UnknownFood(t *testing.T) {
	m := visualizing(t, "diabetes")
	// hp1 belongs to hypertension, not the selected disease.
	assert.ErrorIs(t, m.OpenDetail("hp1"), dataset.ErrUnknownFood)
	assert.Empty(t, m.State().DetailFoodID)
}

func TestOverlaysOutsideVisualization(t *testing.T) {
	ops := map[string]func(*Machine) error{
		"open detail":   func(m *Machine) error { return m.OpenDetail("db1") },
		"close detail":  func(m *Machine) error { return m.CloseDetail() },
		"open quiz":     func(m *Machine) error { return m.OpenQuiz() },
		"close quiz":    func(m *Machine) error { return m.CloseQuiz() },
		"submit answer": submitSafe,
	}

	for name, op := range ops {
		t.Run(name+"/landing", func(t *testing.T) {
			m := newMachine(t)
			assert.ErrorIs(t, op(m), ErrInvalidOverlayContext)
			assert.Equal(t, State{ActiveScreen: ScreenLanding}, m.State())
		})
		t.Run(name+"/selector", func(t *testing.T) {
			m := newMachine(t)
			require.NoError(t, m.Enter())
			assert.ErrorIs(t, op(m), ErrInvalidOverlayContext)
			assert.Equal(t, State{ActiveScreen: ScreenSelector}, m.State())
		})
	}
}

func submitSafe(m *Machine) error {
	_, err := m.SubmitAnswer("safe")
	return err
}

func TestQuizOverlay_FullRun(t *testing.T) {
	m := visualizing(t, "diabetes")
	require.NoError(t, m.OpenQuiz())
	assert.True(t, m.State().QuizActive)

	// First five diabetes foods: four safe, then one avoid.
	for _, option := range []string{"Safe", "Safe", "Safe", "Safe", "Avoid"} {
		adv, err := m.SubmitAnswer(option)
		require.NoError(t, err)
		require.NoError(t, m.AdvanceQuiz(adv))
	}

	q, ok := m.Quiz()
	require.True(t, ok)
	assert.True(t, q.Complete)
	assert.Equal(t, 5, q.Score)
	assert.True(t, q.BonusEligible)

	snap := m.Snapshot()
	require.NotNil(t, snap.Quiz)
	assert.True(t, snap.Quiz.Complete)
}

func TestQuizOverlay_ReopenStartsFresh(t *testing.T) {
	m := visualizing(t, "diabetes")
	require.NoError(t, m.OpenQuiz())
	first, _ := m.Quiz()

	adv, err := m.SubmitAnswer("safe")
	require.NoError(t, err)

	require.NoError(t, m.OpenQuiz())
	second, _ := m.Quiz()
	assert.NotEqual(t, first.ID, second.ID)
	assert.Zero(t, second.Score)
	assert.Zero(t, second.CurrentIndex)
	assert.False(t, second.Revealed)

	// The advance scheduled by the discarded session is ignored.
	assert.ErrorIs(t, m.AdvanceQuiz(adv), quiz.ErrStaleAdvance)
	third, _ := m.Quiz()
	assert.Zero(t, third.CurrentIndex)
}

func TestCloseQuiz_CancelsPendingAdvance(t *testing.T) {
	m := visualizing(t, "hypertension")
	require.NoError(t, m.OpenQuiz())
	adv, err := m.SubmitAnswer("moderate")
	require.NoError(t, err)

	require.NoError(t, m.CloseQuiz())
	assert.False(t, m.State().QuizActive)
	assert.True(t, IsStale(m.AdvanceQuiz(adv)))
}

func TestSubmitAnswer_NoQuiz(t *testing.T) {
	m := visualizing(t, "diabetes")
	_, err := m.SubmitAnswer("safe")
	assert.ErrorIs(t, err, quiz.ErrInvalidQuizState)
}

func TestSubmitAnswer_WhileRevealed(t *testing.T) {
	m := visualizing(t, "diabetes")
	require.NoError(t, m.OpenQuiz())
	_, err := m.SubmitAnswer("safe")
	require.NoError(t, err)

	_, err = m.SubmitAnswer("avoid")
	assert.ErrorIs(t, err, quiz.ErrInvalidQuizState)
	q, _ := m.Quiz()
	assert.Equal(t, 1, q.Score)
	assert.Equal(t, "Safe", q.SelectedAnswer)
}

func TestDetailAndQuizCoexist(t *testing.T) {
	m := visualizing(t, "diabetes")
	require.NoError(t, m.OpenDetail("db3"))
	require.NoError(t, m.OpenQuiz())

	st := m.State()
	assert.Equal(t, "db3", st.DetailFoodID)
	assert.True(t, st.QuizActive)
}

func TestResizeViewport_NeverChangesScreen(t *testing.T) {
	m := newMachine(t)
	require.NoError(t, m.ResizeViewport(320, 480))
	assert.Equal(t, State{ActiveScreen: ScreenLanding}, m.State())
	assert.Zero(t, m.Transitions())
	assert.False(t, m.Unsupported())
}

func TestResizeViewport_NarrowVisualization(t *testing.T) {
	m := visualizing(t, "diabetes")
	require.NoError(t, m.OpenDetail("db1"))

	err := m.ResizeViewport(500, 800)
	assert.ErrorIs(t, err, ErrUnsupportedViewport)
	assert.True(t, m.Unsupported())
	assert.True(t, m.Snapshot().Unsupported)

	// The state survives so widening the viewport restores the view.
	assert.Equal(t, "db1", m.State().DetailFoodID)
	require.NoError(t, m.ResizeViewport(1024, 800))
	assert.False(t, m.Unsupported())
}

func TestSelectDisease_NarrowViewport(t *testing.T) {
	m := newMachine(t)
	require.NoError(t, m.Enter())
	require.NoError(t, m.ResizeViewport(767, 600))

	assert.ErrorIs(t, m.SelectDisease("diabetes"), ErrUnsupportedViewport)
	assert.Equal(t, State{ActiveScreen: ScreenSelector}, m.State())

	require.NoError(t, m.ResizeViewport(768, 600))
	assert.NoError(t, m.SelectDisease("diabetes"))
}

func TestEnter_NarrowViewport(t *testing.T) {
	m := newMachine(t, WithMinViewportWidth(1000))
	require.NoError(t, m.ResizeViewport(999, 600))
	assert.ErrorIs(t, m.Enter(), ErrUnsupportedViewport)
	assert.Equal(t, ScreenLanding, m.State().ActiveScreen)
}

func TestAdvanceQuiz_WithoutSession(t *testing.T) {
	m := newMachine(t)
	assert.ErrorIs(t, m.AdvanceQuiz(quiz.Advance{SessionID: "x", Token: "y"}), quiz.ErrStaleAdvance)
}

func TestTransitionError(t *testing.T) {
	err := &TransitionError{Op: "select disease", From: ScreenSelector, Err: ErrUnsupportedViewport}
	assert.Equal(t, "select disease from selector: unsupported viewport", err.Error())
	assert.ErrorIs(t, err, ErrUnsupportedViewport)
}

func TestScreenString(t *testing.T) {
	assert.Equal(t, "landing", ScreenLanding.String())
	assert.Equal(t, "selector", ScreenSelector.String())
	assert.Equal(t, "visualization", ScreenVisualization.String())
	assert.Equal(t, "screen(9)", Screen(9).String())
}
