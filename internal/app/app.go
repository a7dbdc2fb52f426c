package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/foodverse/foodverse/internal/config"
	"github.com/foodverse/foodverse/internal/nav"
	"github.com/foodverse/foodverse/internal/router"
	"github.com/foodverse/foodverse/internal/screen"
	"github.com/foodverse/foodverse/internal/screens/fallback"
	"github.com/foodverse/foodverse/internal/screens/landing"
	"github.com/foodverse/foodverse/internal/screens/selector"
	"github.com/foodverse/foodverse/internal/screens/visualization"
	"github.com/foodverse/foodverse/internal/ui/layout"
)

// Options holds the dependencies for the app.
type Options struct {
	Machine *nav.Machine
	Config  config.Config
	Logger  *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	machine  *nav.Machine
	fallback *fallback.FallbackScreen
	cfg      config.Config
	log      *zap.Logger
	width    int
	height   int
}

// NewAppModel creates the root model with the landing screen active.
func NewAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	cfg := opts.Config
	if cfg.CellWidth <= 0 {
		cfg.CellWidth = config.Default().CellWidth
	}
	factories := map[nav.Screen]router.Factory{
		nav.ScreenLanding: func(*nav.Machine) screen.Screen {
			return landing.New()
		},
		nav.ScreenSelector: func(m *nav.Machine) screen.Screen {
			return selector.New(m)
		},
		nav.ScreenVisualization: func(m *nav.Machine) screen.Screen {
			return visualization.New(m)
		},
	}

	return AppModel{
		router:   router.New(opts.Machine, factories, log),
		machine:  opts.Machine,
		fallback: fallback.New(cfg.MinColumns()),
		cfg:      cfg,
		log:      log,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Terminal cells are roughly twice as tall as they are wide.
		err := m.machine.ResizeViewport(msg.Width*m.cfg.CellWidth, msg.Height*m.cfg.CellWidth*2)
		if err != nil {
			m.log.Debug("resize", zap.Error(err))
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.machine.Unsupported() {
				return m, func() tea.Msg { return router.BackMsg{} }
			}
		}
		if m.machine.Unsupported() {
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame, or nothing before the first window size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	var active screen.Screen = m.fallback
	if !m.machine.Unsupported() && m.router.Active() != nil {
		active = m.router.Active()
	}

	frame := layout.Frame{
		Title: active.Title(),
		Hints: []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}},
	}
	if b, ok := active.(screen.BadgeProvider); ok {
		frame.Badge = b.Badge()
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		frame.Hints = p.KeyHints()
	}
	return frame.Render(m.width, m.height, active.View)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(NewAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
