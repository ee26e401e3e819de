package metronome

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fretwise/internal/audio"
	"github.com/abhisek/fretwise/internal/screen"
	"github.com/abhisek/fretwise/internal/ui/components"
	"github.com/abhisek/fretwise/internal/ui/layout"
	"github.com/abhisek/fretwise/internal/ui/theme"
)

// maxBeatsPerBar bounds the [ and ] keys.
const maxBeatsPerBar = 16

// tickMsg is one scheduled beat. gen ties it to the run that scheduled it.
type tickMsg struct{ gen int }

// MetronomeScreen is a start/stop click with tempo and meter controls.
type MetronomeScreen struct {
	met    *audio.Metronome
	sink   audio.Sink
	logger *slog.Logger

	running bool
	gen     int
	beat    int // 1-based position in the bar, 0 before the first click
	errMsg  string
}

var _ screen.Screen = (*MetronomeScreen)(nil)
var _ screen.KeyHintProvider = (*MetronomeScreen)(nil)
var _ screen.StatusProvider = (*MetronomeScreen)(nil)
var _ screen.Closer = (*MetronomeScreen)(nil)

// New creates a stopped metronome. Out-of-range settings fall back to the
// defaults.
func New(bpm, beatsPerBar int, sink audio.Sink, logger *slog.Logger) *MetronomeScreen {
	if sink == nil {
		sink = audio.NopSink{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	met, err := audio.NewMetronome(bpm, beatsPerBar)
	if err != nil {
		logger.Warn("metronome settings rejected, using defaults", "bpm", bpm, "beats_per_bar", beatsPerBar, "error", err)
		met, _ = audio.NewMetronome(audio.DefaultBPM, audio.DefaultBeatsPerBar)
	}
	return &MetronomeScreen{met: met, sink: sink, logger: logger}
}

func (m *MetronomeScreen) Init() tea.Cmd { return nil }

func (m *MetronomeScreen) Title() string { return "Metronome" }

func (m *MetronomeScreen) Status() string { return fmt.Sprintf("%d BPM", m.met.BPM) }

func (m *MetronomeScreen) KeyHints() []layout.KeyHint {
	action := "Start"
	if m.running {
		action = "Stop"
	}
	return []layout.KeyHint{
		{Key: "Space", Description: action},
		{Key: "+/-", Description: "Tempo"},
		{Key: "↑↓", Description: "Tempo ±5"},
		{Key: "[ ]", Description: "Beats/bar"},
		{Key: "Esc", Description: "Back"},
	}
}

// Running reports whether the click is on.
func (m *MetronomeScreen) Running() bool { return m.running }

// BPM returns the tempo.
func (m *MetronomeScreen) BPM() int { return m.met.BPM }

// BeatsPerBar returns the meter; 0 means no accents.
func (m *MetronomeScreen) BeatsPerBar() int { return m.met.BeatsPerBar }

func (m *MetronomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.running || msg.gen != m.gen {
			return m, nil
		}
		return m, m.click()
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())
	}
	return m, nil
}

func (m *MetronomeScreen) handleKey(key string) tea.Cmd {
	switch key {
	case "space", " ", "enter":
		if m.running {
			m.stop()
			return nil
		}
		return m.start()
	case "+", "=":
		m.setBPM(m.met.BPM + 1)
	case "-", "_":
		m.setBPM(m.met.BPM - 1)
	case "up", "k":
		m.setBPM(m.met.BPM + 5)
	case "down", "j":
		m.setBPM(m.met.BPM - 5)
	case "]":
		m.met.BeatsPerBar = min(m.met.BeatsPerBar+1, maxBeatsPerBar)
	case "[":
		m.met.BeatsPerBar = max(m.met.BeatsPerBar-1, 0)
	}
	return nil
}

// setBPM clamps to the supported range. A running click picks the new
// tempo up on its next beat.
func (m *MetronomeScreen) setBPM(bpm int) {
	bpm = max(audio.MinBPM, min(audio.MaxBPM, bpm))
	if err := m.met.SetBPM(bpm); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
}

// start clicks immediately and schedules the next beat. Bumping gen makes
// ticks left over from an earlier run harmless.
func (m *MetronomeScreen) start() tea.Cmd {
	m.gen++
	m.running = true
	m.met.Reset()
	m.logger.Debug("metronome started", "bpm", m.met.BPM, "beats_per_bar", m.met.BeatsPerBar)
	return m.click()
}

func (m *MetronomeScreen) stop() {
	m.gen++
	m.running = false
	m.beat = 0
	m.logger.Debug("metronome stopped", "beats", m.met.Beats())
}

func (m *MetronomeScreen) click() tea.Cmd {
	beat, accent := m.met.Next()
	m.beat = beat
	if err := m.sink.Click(accent); err != nil {
		m.errMsg = err.Error()
		m.logger.Warn("click failed", "error", err)
	}
	gen := m.gen
	return tea.Tick(m.met.Interval(), func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

// Close stops the click when the screen is left.
func (m *MetronomeScreen) Close() tea.Cmd {
	if m.running {
		m.stop()
	}
	return nil
}

// beatRow draws one dot per beat of the bar with the current beat lit.
func (m *MetronomeScreen) beatRow() string {
	on := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	accent := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	off := lipgloss.NewStyle().Foreground(theme.Border)

	n := m.met.BeatsPerBar
	if n < 1 {
		if m.beat > 0 {
			return on.Render("●")
		}
		return off.Render("○")
	}
	dots := make([]string, n)
	for i := range dots {
		switch {
		case i+1 == m.beat && i == 0:
			dots[i] = accent.Render("●")
		case i+1 == m.beat:
			dots[i] = on.Render("●")
		default:
			dots[i] = off.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

func (m *MetronomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	tempo := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
		Render(fmt.Sprintf("%d BPM", m.met.BPM))

	meter := "no accents"
	if m.met.BeatsPerBar > 0 {
		meter = fmt.Sprintf("%d beats per bar", m.met.BeatsPerBar)
	}
	state := "stopped"
	if m.running {
		state = "running"
	}

	card := strings.Join([]string{
		tempo,
		theme.Hint.Render(meter + " · " + state),
		"",
		m.beatRow(),
	}, "\n")

	sections := []string{layout.Centered(components.ArcadeCard(card, cw), width)}
	if m.errMsg != "" {
		sections = append(sections, layout.Line(m.errMsg, theme.Error, width))
	}
	return strings.Join(sections, "\n\n")
}
