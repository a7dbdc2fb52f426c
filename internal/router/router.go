package router

import (
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/foodverse/foodverse/internal/nav"
	"github.com/foodverse/foodverse/internal/quiz"
	"github.com/foodverse/foodverse/internal/screen"
)

// Factory builds the live screen for a navigation screen.
type Factory func(m *nav.Machine) screen.Screen

// Router keeps exactly one live screen, the one matching the navigation
// machine's active screen. A screen is rebuilt every time it is entered.
type Router struct {
	machine   *nav.Machine
	factories map[nav.Screen]Factory
	log       *zap.Logger

	active screen.Screen
	seen   uint64
}

// New creates a Router and builds the screen for the machine's current state.
func New(machine *nav.Machine, factories map[nav.Screen]Factory, log *zap.Logger) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Router{
		machine:   machine,
		factories: factories,
		log:       log,
	}
	r.rebuild()
	return r
}

// Init returns the active screen's initial command.
func (r *Router) Init() tea.Cmd {
	if r.active == nil {
		return nil
	}
	return r.active.Init()
}

// Machine returns the navigation machine the router follows.
func (r *Router) Machine() *nav.Machine {
	return r.machine
}

// Active returns the live screen.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Update applies navigation requests and forwards every other message to
// the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case EnterMsg:
		return r.apply(r.machine.Enter())
	case SelectDiseaseMsg:
		return r.apply(r.machine.SelectDisease(msg.DiseaseID))
	case BackMsg:
		return r.apply(r.machine.BackToSelector())
	case OpenDetailMsg:
		return r.apply(r.machine.OpenDetail(msg.FoodID))
	case CloseDetailMsg:
		return r.apply(r.machine.CloseDetail())
	case OpenQuizMsg:
		return r.apply(r.machine.OpenQuiz())
	case CloseQuizMsg:
		return r.apply(r.machine.CloseQuiz())

	case SubmitAnswerMsg:
		adv, err := r.machine.SubmitAnswer(msg.Option)
		if err != nil {
			return r.apply(err)
		}
		return scheduleAdvance(adv)

	case QuizAdvanceMsg:
		err := r.machine.AdvanceQuiz(msg.Advance)
		if errors.Is(err, quiz.ErrStaleAdvance) {
			r.log.Debug("stale quiz advance dropped", zap.String("quiz_session", msg.Advance.SessionID))
			return nil
		}
		return r.apply(err)
	}

	if r.active == nil {
		return nil
	}
	updated, cmd := r.active.Update(msg)
	r.active = updated
	return tea.Batch(cmd, r.Sync())
}

// Sync rebuilds the active screen if the machine entered a screen since the
// last call, and returns the new screen's initial command.
func (r *Router) Sync() tea.Cmd {
	if r.machine.Transitions() == r.seen {
		return nil
	}
	r.rebuild()
	return r.Init()
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}

func (r *Router) apply(err error) tea.Cmd {
	if err != nil {
		return func() tea.Msg { return ErrorMsg{Err: err} }
	}
	return r.Sync()
}

func (r *Router) rebuild() {
	r.seen = r.machine.Transitions()
	kind := r.machine.State().ActiveScreen
	f, ok := r.factories[kind]
	if !ok {
		r.log.Error("no screen registered", zap.Stringer("screen", kind))
		r.active = nil
		return
	}
	r.active = f(r.machine)
}

func scheduleAdvance(adv quiz.Advance) tea.Cmd {
	msg := QuizAdvanceMsg{Advance: adv}
	if adv.Delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(adv.Delay, func(time.Time) tea.Msg { return msg })
}
