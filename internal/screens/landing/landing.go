// Package landing is the splash screen shown at start-up.
package landing

import (
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/foodverse/foodverse/internal/nav"
	"github.com/foodverse/foodverse/internal/router"
	"github.com/foodverse/foodverse/internal/screen"
	"github.com/foodverse/foodverse/internal/ui/components"
	"github.com/foodverse/foodverse/internal/ui/layout"
	"github.com/foodverse/foodverse/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

const (
	tagline   = "A Cosmic Journey Through Nutrition"
	launchCTA = "Launch Into FoodVerse"
)

const planetArt = `    .-~~~-.
  .'  o    '.
 :    🍎  o  :
  '.  o    .'
    '-...-'`

type tickMsg time.Time

// LandingScreen plays a short intro and waits for the learner to launch.
type LandingScreen struct {
	elapsed   time.Duration
	tickCount int
	launched  bool
	flash     string
	button    components.Button
}

var (
	_ screen.Screen          = (*LandingScreen)(nil)
	_ screen.KeyHintProvider = (*LandingScreen)(nil)
)

// New creates the landing screen.
func New() *LandingScreen {
	l := &LandingScreen{}
	l.button = components.NewButton(launchCTA, true, l.launch)
	return l
}

func (l *LandingScreen) Title() string {
	return ""
}

func (l *LandingScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (l *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if l.elapsed < totalDur {
			l.elapsed += tickInterval
		}
		l.tickCount++
		return l, tick()

	case router.ErrorMsg:
		l.launched = false
		if errors.Is(msg.Err, nav.ErrUnsupportedViewport) {
			l.flash = "FoodVerse is best experienced on a wider screen"
		} else {
			l.flash = msg.Err.Error()
		}
		return l, nil

	case tea.KeyPressMsg:
		// The first key during the intro only skips it.
		if l.elapsed < totalDur {
			l.elapsed = totalDur
			return l, nil
		}
		var cmd tea.Cmd
		l.button, cmd = l.button.Update(msg)
		return l, cmd
	}

	return l, nil
}

func (l *LandingScreen) launch() tea.Cmd {
	if l.launched {
		return nil
	}
	l.launched = true
	l.flash = ""
	return func() tea.Msg {
		return router.EnterMsg{}
	}
}

func (l *LandingScreen) KeyHints() []layout.KeyHint {
	if l.elapsed < totalDur {
		return []layout.KeyHint{
			{Key: "Any key", Description: "Skip intro"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Launch"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (l *LandingScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, components.StarRow(0, width, l.tickCount))

	// Phase 2+: the food planet rises
	if l.elapsed >= phase1End {
		sections = append(sections, "", lipgloss.NewStyle().Foreground(theme.Secondary).Render(planetArt))
	}

	// Phase 3+: banner, tagline and launch button
	if l.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")

		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render(tagline))

		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Explore which foods help or hurt, one planet at a time."))
	}

	if l.elapsed >= totalDur {
		sections = append(sections, "", l.button.View(components.ContentWidth(width)))
		if l.flash != "" {
			sections = append(sections, "", theme.Incorrect.Render(l.flash))
		}
	} else if l.elapsed >= phase2End {
		sections = append(sections, "", theme.Hint.Render("press any key to skip"))
	}

	sections = append(sections, components.StarRow(1, width, l.tickCount))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
