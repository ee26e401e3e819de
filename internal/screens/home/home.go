package home

import (
	"log/slog"
	"math/rand/v2"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fretwise/internal/audio"
	"github.com/abhisek/fretwise/internal/quiz"
	"github.com/abhisek/fretwise/internal/router"
	"github.com/abhisek/fretwise/internal/screen"
	"github.com/abhisek/fretwise/internal/screens/circle"
	"github.com/abhisek/fretwise/internal/screens/explorer"
	"github.com/abhisek/fretwise/internal/screens/fretboard"
	"github.com/abhisek/fretwise/internal/screens/keyboard"
	"github.com/abhisek/fretwise/internal/screens/metronome"
	"github.com/abhisek/fretwise/internal/screens/practice"
	quizscreen "github.com/abhisek/fretwise/internal/screens/quiz"
	"github.com/abhisek/fretwise/internal/theory"
	"github.com/abhisek/fretwise/internal/ui/components"
	"github.com/abhisek/fretwise/internal/ui/layout"
)

// Deps carries everything the tools reachable from the home menu need.
type Deps struct {
	Engine      *quiz.Engine
	Fretboard   theory.Fretboard
	Keyboard    theory.Keyboard
	Waveform    audio.Waveform
	BPM         int
	BeatsPerBar int
	Sink        audio.Sink
	Rand        *rand.Rand
	Logger      *slog.Logger
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu components.Menu
	deps Deps
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	if deps.Sink == nil {
		deps.Sink = audio.NopSink{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}

	tools := []struct {
		label string
		open  func() screen.Screen
	}{
		{"QUIZ", func() screen.Screen { return quizscreen.NewModeScreen(deps.Engine, deps.Logger) }},
		{"CHORDS & SCALES", func() screen.Screen { return explorer.New(deps.Sink) }},
		{"FRETBOARD", func() screen.Screen { return fretboard.New(deps.Fretboard) }},
		{"KEYBOARD", func() screen.Screen { return keyboard.New(deps.Keyboard, deps.Waveform, deps.Sink, deps.Logger) }},
		{"CIRCLE OF FIFTHS", func() screen.Screen { return circle.New() }},
		{"PRACTICE", func() screen.Screen { return practice.New(deps.Rand) }},
		{"METRONOME", func() screen.Screen { return metronome.New(deps.BPM, deps.BeatsPerBar, deps.Sink, deps.Logger) }},
	}

	items := make([]components.MenuItem, 0, len(tools)+1)
	for _, t := range tools {
		items = append(items, components.MenuItem{
			Label:  t.label,
			Action: func() tea.Cmd { return router.PushCmd(t.open()) },
		})
	}
	items[0].Disabled = deps.Engine == nil
	items = append(items, components.MenuItem{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }})

	menu := components.NewMenu(items)
	// Two columns keep all eight buttons on screen.
	menu.Columns = 2
	return &HomeScreen{menu: menu, deps: deps}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "q" {
		return h, tea.Quit
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 44 || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(width-4, compact))
	if !compact {
		sections = append(sections, renderHeadstock(h.deps.Fretboard.Tuning, cw))
	}
	sections = append(sections, renderStatsBar(h.deps.Fretboard.Tuning, h.deps.BPM, h.deps.Waveform, cw, compact))

	if layout.IsCompactHeight(termHeight) {
		sections = append(sections, layout.Centered(h.menu.View(), cw))
	} else {
		sections = append(sections, layout.Centered(h.menu.Grid(buttonWidth), cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓←→", Description: "Navigate"},
		{Key: "Enter/1-8", Description: "Open"},
		{Key: "Q", Description: "Quit"},
	}
}

// Selected returns the label of the highlighted menu entry.
func (h *HomeScreen) Selected() string {
	return h.menu.Items[h.menu.Selected].Label
}
