package app

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fretwise/internal/audio"
	"github.com/abhisek/fretwise/internal/config"
	"github.com/abhisek/fretwise/internal/logging"
	"github.com/abhisek/fretwise/internal/quiz"
	"github.com/abhisek/fretwise/internal/randutil"
	"github.com/abhisek/fretwise/internal/router"
	"github.com/abhisek/fretwise/internal/screen"
	"github.com/abhisek/fretwise/internal/screens/home"
	"github.com/abhisek/fretwise/internal/ui/layout"
)

// Options holds the dependencies needed to build the app.
type Options struct {
	Config *config.Config
	Sink   audio.Sink
	Logger *slog.Logger
	Rand   *rand.Rand
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	logger *slog.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) (AppModel, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Defaults()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	rng := opts.Rand
	if rng == nil {
		rng = randutil.NewRandom()
	}

	board, err := cfg.Fretboard()
	if err != nil {
		return AppModel{}, fmt.Errorf("fretboard: %w", err)
	}

	settings := cfg.QuizSettings()
	engine := quiz.NewEngine(quiz.NewGenerator(rng, settings, logger), settings, logger)

	homeScreen := home.New(home.Deps{
		Engine:      engine,
		Fretboard:   board,
		Keyboard:    cfg.KeyboardRange(),
		Waveform:    cfg.Waveform(),
		BPM:         cfg.Metronome.BPM,
		BeatsPerBar: cfg.Metronome.BeatsPerBar,
		Sink:        opts.Sink,
		Rand:        rng,
		Logger:      logger,
	})
	return AppModel{
		router: router.New(homeScreen),
		logger: logger,
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, m.quit()
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, router.PopCmd()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// quit closes every screen on the stack so nothing keeps sounding after
// the program exits.
func (m AppModel) quit() tea.Cmd {
	m.logger.Info("fretwise exiting", "depth", m.router.Depth())
	return tea.Sequence(m.router.Unwind(), tea.Quit)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the whole frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	status := ""
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}

	header := layout.RenderHeader(m.router.Trail(), status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		return append(hp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
