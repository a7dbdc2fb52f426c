package nav

import (
	"errors"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/foodverse/foodverse/internal/dataset"
	"github.com/foodverse/foodverse/internal/layout"
	"github.com/foodverse/foodverse/internal/quiz"
)

// Option configures a Machine.
type Option func(*Machine)

// WithLayout replaces the default layout engine.
func WithLayout(e *layout.Engine) Option {
	return func(m *Machine) {
		if e != nil {
			m.engine = e
		}
	}
}

// WithLogger attaches a logger to the machine and the quiz sessions it starts.
func WithLogger(l *zap.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.log = l
		}
	}
}

// WithMinViewportWidth overrides DefaultMinViewportWidth.
func WithMinViewportWidth(w int) Option {
	return func(m *Machine) {
		if w > 0 {
			m.minWidth = w
		}
	}
}

// WithAdvanceDelay sets the reveal delay of new quiz sessions.
func WithAdvanceDelay(d time.Duration) Option {
	return func(m *Machine) {
		m.advanceDelay = d
	}
}

// Machine is the single writer of the navigation state. It owns the current
// layout positions and at most one quiz session. It is not safe for
// concurrent use.
type Machine struct {
	store        *dataset.Store
	engine       *layout.Engine
	log          *zap.Logger
	minWidth     int
	advanceDelay time.Duration

	state       State
	viewport    Viewport
	sized       bool
	positions   []layout.Position
	session     *quiz.Session
	transitions uint64
}

// New returns a machine on the landing screen.
func New(store *dataset.Store, opts ...Option) *Machine {
	m := &Machine{
		store:        store,
		engine:       layout.New(layout.DefaultRadius),
		log:          zap.NewNop(),
		minWidth:     DefaultMinViewportWidth,
		advanceDelay: quiz.DefaultAdvanceDelay,
		state:        State{ActiveScreen: ScreenLanding},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Store returns the dataset the machine validates against.
func (m *Machine) Store() *dataset.Store { return m.store }

// State returns a copy of the navigation state.
func (m *Machine) State() State { return m.state }

// Transitions returns the screen change counter.
func (m *Machine) Transitions() uint64 { return m.transitions }

// Positions returns the layout of the selected disease's foods.
func (m *Machine) Positions() []layout.Position { return slices.Clone(m.positions) }

// Disease returns the selected disease.
func (m *Machine) Disease() (dataset.Disease, bool) {
	if m.state.SelectedDiseaseID == "" {
		return dataset.Disease{}, false
	}
	d, err := m.store.Disease(m.state.SelectedDiseaseID)
	if err != nil {
		return dataset.Disease{}, false
	}
	return d, true
}

// DetailFood returns the food shown in the detail overlay.
func (m *Machine) DetailFood() (dataset.Food, bool) {
	if m.state.DetailFoodID == "" {
		return dataset.Food{}, false
	}
	f, err := m.store.Food(m.state.SelectedDiseaseID, m.state.DetailFoodID)
	if err != nil {
		return dataset.Food{}, false
	}
	return f, true
}

// Quiz returns the live quiz snapshot.
func (m *Machine) Quiz() (quiz.Snapshot, bool) {
	if m.session == nil {
		return quiz.Snapshot{}, false
	}
	return m.session.Snapshot(), true
}

// Unsupported reports whether the visualization is active on a viewport
// narrower than the minimum. A viewport that was never reported counts as
// wide enough.
func (m *Machine) Unsupported() bool {
	return m.state.ActiveScreen == ScreenVisualization && m.narrow()
}

// Snapshot returns the full render state.
func (m *Machine) Snapshot() Snapshot {
	snap := Snapshot{
		State:       m.state,
		Viewport:    m.viewport,
		Unsupported: m.Unsupported(),
		Positions:   m.Positions(),
		Transitions: m.transitions,
	}
	if q, ok := m.Quiz(); ok {
		snap.Quiz = &q
	}
	return snap
}

// Enter leaves the landing screen for the disease selector.
func (m *Machine) Enter() error {
	const op = "enter"
	if m.state.ActiveScreen != ScreenLanding {
		return m.reject(op, ErrInvalidTransition)
	}
	if m.narrow() {
		return m.reject(op, ErrUnsupportedViewport)
	}
	m.moveTo(ScreenSelector)
	return nil
}

// SelectDisease opens the visualization for diseaseID and lays out its foods.
func (m *Machine) SelectDisease(diseaseID string) error {
	const op = "select disease"
	if m.state.ActiveScreen != ScreenSelector {
		return m.reject(op, ErrInvalidTransition)
	}
	d, err := m.store.Disease(diseaseID)
	if err != nil {
		return m.reject(op, err)
	}
	if m.narrow() {
		return m.reject(op, ErrUnsupportedViewport)
	}

	m.state.SelectedDiseaseID = d.ID
	m.positions = m.engine.Compute(len(d.Foods))
	m.moveTo(ScreenVisualization)
	return nil
}

// BackToSelector returns from the visualization to the selector, forgetting
// the disease, the detail overlay and any quiz session. On the selector it
// is a no-op.
func (m *Machine) BackToSelector() error {
	const op = "back to selector"
	switch m.state.ActiveScreen {
	case ScreenSelector:
		return nil
	case ScreenLanding:
		return m.reject(op, ErrInvalidTransition)
	}

	m.endQuiz()
	m.positions = nil
	m.state = State{ActiveScreen: m.state.ActiveScreen}
	m.moveTo(ScreenSelector)
	return nil
}

// OpenDetail shows the detail overlay for foodID, replacing any food
// already shown.
func (m *Machine) OpenDetail(foodID string) error {
	const op = "open detail"
	if err := m.requireVisualization(op); err != nil {
		return err
	}
	if _, err := m.store.Food(m.state.SelectedDiseaseID, foodID); err != nil {
		return m.reject(op, err)
	}
	m.state.DetailFoodID = foodID
	m.log.Debug("detail opened", zap.String("food", foodID))
	return nil
}

// CloseDetail hides the detail overlay.
func (m *Machine) CloseDetail() error {
	if err := m.requireVisualization("close detail"); err != nil {
		return err
	}
	m.state.DetailFoodID = ""
	return nil
}

// OpenQuiz starts a new quiz session for the selected disease. A session
// that is already open is discarded, never resumed.
func (m *Machine) OpenQuiz() error {
	const op = "open quiz"
	if err := m.requireVisualization(op); err != nil {
		return err
	}
	d, ok := m.Disease()
	if !ok {
		return m.reject(op, dataset.ErrInvalidDiseaseID)
	}

	m.endQuiz()
	m.session = quiz.New(d.Name, d.Foods,
		quiz.WithAdvanceDelay(m.advanceDelay),
		quiz.WithLogger(m.log),
	)
	m.state.QuizActive = true
	m.log.Info("quiz opened", zap.String("disease", d.ID), zap.String("quiz_session", m.session.ID()))
	return nil
}

// CloseQuiz discards the quiz session and cancels its pending advance.
func (m *Machine) CloseQuiz() error {
	if err := m.requireVisualization("close quiz"); err != nil {
		return err
	}
	m.endQuiz()
	return nil
}

// SubmitAnswer forwards option to the open quiz session. The returned
// Advance must be scheduled by the shell and handed back to AdvanceQuiz.
func (m *Machine) SubmitAnswer(option string) (quiz.Advance, error) {
	const op = "submit answer"
	if err := m.requireVisualization(op); err != nil {
		return quiz.Advance{}, err
	}
	if m.session == nil {
		return quiz.Advance{}, m.reject(op, quiz.ErrInvalidQuizState)
	}
	adv, err := m.session.Submit(option)
	if err != nil {
		return quiz.Advance{}, m.reject(op, err)
	}
	return adv, nil
}

// AdvanceQuiz applies a scheduled advance. Advances addressed to a session
// that no longer exists return quiz.ErrStaleAdvance and change nothing.
func (m *Machine) AdvanceQuiz(adv quiz.Advance) error {
	if m.session == nil || m.session.ID() != adv.SessionID {
		return quiz.ErrStaleAdvance
	}
	return m.session.Advance(adv.Token)
}

// ResizeViewport records the viewport size in logical units. It never
// changes the active screen; it reports ErrUnsupportedViewport when the
// visualization is active on a viewport that is now too narrow.
func (m *Machine) ResizeViewport(width, height int) error {
	m.viewport = Viewport{Width: width, Height: height}
	m.sized = true
	if m.Unsupported() {
		m.log.Warn("viewport too narrow for visualization",
			zap.Int("width", width), zap.Int("min_width", m.minWidth))
		return &TransitionError{Op: "resize viewport", From: m.state.ActiveScreen, Err: ErrUnsupportedViewport}
	}
	return nil
}

// RingRadius returns the radius the layout engine places foods on.
func (m *Machine) RingRadius() float64 {
	if m.engine.Radius <= 0 {
		return layout.DefaultRadius
	}
	return m.engine.Radius
}

// MinViewportWidth returns the configured threshold.
func (m *Machine) MinViewportWidth() int { return m.minWidth }

func (m *Machine) narrow() bool {
	return m.sized && m.viewport.Width < m.minWidth
}

func (m *Machine) requireVisualization(op string) error {
	if m.state.ActiveScreen != ScreenVisualization {
		return m.reject(op, ErrInvalidOverlayContext)
	}
	return nil
}

func (m *Machine) endQuiz() {
	if m.session != nil {
		m.session.Close()
		m.session = nil
	}
	m.state.QuizActive = false
}

func (m *Machine) moveTo(s Screen) {
	from := m.state.ActiveScreen
	m.state.ActiveScreen = s
	m.transitions++
	m.log.Info("screen changed",
		zap.Stringer("from", from),
		zap.Stringer("to", s),
		zap.String("disease", m.state.SelectedDiseaseID),
	)
}

func (m *Machine) reject(op string, err error) error {
	m.log.Debug("navigation rejected",
		zap.String("op", op),
		zap.Stringer("screen", m.state.ActiveScreen),
		zap.Error(err),
	)
	return &TransitionError{Op: op, From: m.state.ActiveScreen, Err: err}
}

// IsStale reports whether err marks an advance for a discarded session.
func IsStale(err error) bool {
	return errors.Is(err, quiz.ErrStaleAdvance)
}
